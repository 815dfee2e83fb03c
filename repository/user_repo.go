package repository

import "budgettracker/models"

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUsersByIDs(ids []string) ([]*models.User, error)
	UpdateUser(user *models.User) error
}
