package repository

import (
	"context"
	"time"

	"budgettracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoExpenseRepo struct {
	DB *mongo.Client
}

func NewMongoExpenseRepo(db *mongo.Client) *MongoExpenseRepo {
	return &MongoExpenseRepo{DB: db}
}

func (r *MongoExpenseRepo) collection() *mongo.Collection {
	return r.DB.Database(databaseName).Collection("expenses")
}

func (r *MongoExpenseRepo) CreateExpense(expense *models.Expense) error {
	ctx := context.Background()
	if expense.ID == "" {
		expense.ID = newID()
	}
	if expense.Category == "" {
		expense.Category = models.CategoryOther
	}
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, expense)
	return err
}

func (r *MongoExpenseRepo) GetExpenses(projectID string) ([]*models.Expense, error) {
	ctx := context.Background()

	filter := bson.M{}
	if projectID != "" {
		filter["projectId"] = projectID
	}

	cur, err := r.collection().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var expenses []*models.Expense
	if err := cur.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *MongoExpenseRepo) GetExpenseByID(id string) (*models.Expense, error) {
	ctx := context.Background()
	expense := &models.Expense{}

	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return expense, nil
}

func (r *MongoExpenseRepo) UpdateExpense(expense *models.Expense) error {
	ctx := context.Background()
	expense.UpdatedAt = time.Now().UTC()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": expense.ID},
		bson.M{"$set": bson.M{
			"title":     expense.Title,
			"amount":    expense.Amount,
			"category":  expense.Category,
			"updatedAt": expense.UpdatedAt,
		}})
	return err
}

func (r *MongoExpenseRepo) DeleteExpense(id string) (bool, error) {
	ctx := context.Background()
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoExpenseRepo) DeleteExpensesByProject(projectID string) error {
	ctx := context.Background()
	_, err := r.collection().DeleteMany(ctx, bson.M{"projectId": projectID})
	return err
}
