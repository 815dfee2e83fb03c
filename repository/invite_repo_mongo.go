package repository

import (
	"context"
	"time"

	"budgettracker/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MongoInviteRepo struct {
	DB *mongo.Client
}

func NewMongoInviteRepo(db *mongo.Client) *MongoInviteRepo {
	return &MongoInviteRepo{DB: db}
}

func (r *MongoInviteRepo) CreateInvite(invite *models.Invite) error {
	ctx := context.Background()
	if invite.ID == "" {
		invite.ID = newID()
	}
	if invite.Status == "" {
		invite.Status = models.InviteStatusPending
	}
	now := time.Now().UTC()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	_, err := r.DB.Database(databaseName).Collection("invites").InsertOne(ctx, invite)
	return err
}
