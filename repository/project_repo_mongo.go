package repository

import (
	"context"
	"time"

	"budgettracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProjectRepo struct {
	DB *mongo.Client
}

func NewMongoProjectRepo(db *mongo.Client) *MongoProjectRepo {
	return &MongoProjectRepo{DB: db}
}

func (r *MongoProjectRepo) collection() *mongo.Collection {
	return r.DB.Database(databaseName).Collection("projects")
}

func (r *MongoProjectRepo) CreateProject(project *models.Project) error {
	ctx := context.Background()
	if project.ID == "" {
		project.ID = newID()
	}
	if project.Users == nil {
		project.Users = []string{}
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, project)
	return err
}

func (r *MongoProjectRepo) GetAllProjects() ([]*models.Project, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var projects []*models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *MongoProjectRepo) GetProjectByID(id string) (*models.Project, error) {
	ctx := context.Background()
	project := &models.Project{}

	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

func (r *MongoProjectRepo) UpdateProject(project *models.Project) error {
	ctx := context.Background()
	project.UpdatedAt = time.Now().UTC()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": project.ID},
		bson.M{"$set": bson.M{
			"name":        project.Name,
			"description": project.Description,
			"budget":      project.Budget,
			"users":       project.Users,
			"updatedAt":   project.UpdatedAt,
		}})
	return err
}

func (r *MongoProjectRepo) DeleteProject(id string) error {
	ctx := context.Background()
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
