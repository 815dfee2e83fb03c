package models

import "time"

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
)

type Invite struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	ProjectID string    `json:"projectId" bson:"projectId"`
	Email     string    `json:"email" bson:"email"`
	Token     string    `json:"token" bson:"token"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
