package repository

import (
	"database/sql"
	"time"

	"budgettracker/models"
)

type PostgresInviteRepo struct {
	DB *sql.DB
}

func NewPostgresInviteRepo(db *sql.DB) *PostgresInviteRepo {
	return &PostgresInviteRepo{DB: db}
}

func (r *PostgresInviteRepo) CreateInvite(invite *models.Invite) error {
	if invite.ID == "" {
		invite.ID = newID()
	}
	if invite.Status == "" {
		invite.Status = models.InviteStatusPending
	}
	now := time.Now().UTC()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO invites (id, project_id, email, token, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, invite.ID, invite.ProjectID, invite.Email, invite.Token, invite.Status,
		invite.CreatedAt, invite.UpdatedAt)
	return err
}
