package repository

import (
	"context"
	"time"

	"budgettracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) collection() *mongo.Collection {
	return r.DB.Database(databaseName).Collection("users")
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	if user.ID == "" {
		user.ID = newID()
	}
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatar
	}
	if user.Role == "" {
		user.Role = "user"
	}
	now := time.Now().UTC()
	if user.LastLoginAt.IsZero() {
		user.LastLoginAt = now
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUsersByIDs(ids []string) ([]*models.User, error) {
	ctx := context.Background()
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	cur, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepo) UpdateUser(user *models.User) error {
	ctx := context.Background()
	user.UpdatedAt = time.Now().UTC()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{
			"name":              user.Name,
			"organisation_name": user.OrganisationName,
			"avatar":            user.Avatar,
			"password":          user.Password,
			"role":              user.Role,
			"last_login_at":     user.LastLoginAt,
			"updatedAt":         user.UpdatedAt,
		}})
	return err
}
