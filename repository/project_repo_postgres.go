package repository

import (
	"database/sql"
	"time"

	"budgettracker/models"
)

type PostgresProjectRepo struct {
	DB *sql.DB
}

func NewPostgresProjectRepo(db *sql.DB) *PostgresProjectRepo {
	return &PostgresProjectRepo{DB: db}
}

func (r *PostgresProjectRepo) CreateProject(project *models.Project) error {
	if project.ID == "" {
		project.ID = newID()
	}
	if project.Users == nil {
		project.Users = []string{}
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO projects (id, name, description, budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, project.ID, project.Name, project.Description, project.Budget, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return err
	}

	return r.saveMembers(project)
}

func (r *PostgresProjectRepo) GetAllProjects() ([]*models.Project, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, description, budget, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Description,
			&project.Budget, &project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, project := range projects {
		if err := r.loadMembers(project); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *PostgresProjectRepo) GetProjectByID(id string) (*models.Project, error) {
	project := &models.Project{}
	err := r.DB.QueryRow(`
		SELECT id, name, description, budget, created_at, updated_at
		FROM projects
		WHERE id=$1
	`, id).Scan(&project.ID, &project.Name, &project.Description,
		&project.Budget, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadMembers(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *PostgresProjectRepo) UpdateProject(project *models.Project) error {
	project.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Exec(`
		UPDATE projects
		SET name=$1, description=$2, budget=$3, updated_at=$4
		WHERE id=$5
	`, project.Name, project.Description, project.Budget, project.UpdatedAt, project.ID)
	if err != nil {
		return err
	}

	// Membership rows are replaced wholesale; the set is small.
	if _, err := r.DB.Exec(`DELETE FROM project_users WHERE project_id=$1`, project.ID); err != nil {
		return err
	}
	return r.saveMembers(project)
}

func (r *PostgresProjectRepo) DeleteProject(id string) error {
	_, err := r.DB.Exec(`DELETE FROM projects WHERE id=$1`, id)
	return err
}

func (r *PostgresProjectRepo) saveMembers(project *models.Project) error {
	for _, userID := range project.Users {
		_, err := r.DB.Exec(`
			INSERT INTO project_users (project_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, project.ID, userID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresProjectRepo) loadMembers(project *models.Project) error {
	rows, err := r.DB.Query(`
		SELECT user_id FROM project_users WHERE project_id=$1
	`, project.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	project.Users = []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return err
		}
		project.Users = append(project.Users, userID)
	}
	return rows.Err()
}
