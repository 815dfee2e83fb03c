package repository

import "budgettracker/models"

// ProjectRepository defines the interface for project operations
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetAllProjects() ([]*models.Project, error)
	GetProjectByID(id string) (*models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id string) error
}
