package repository

import (
	"database/sql"
	"time"

	"budgettracker/models"
)

type PostgresExpenseRepo struct {
	DB *sql.DB
}

func NewPostgresExpenseRepo(db *sql.DB) *PostgresExpenseRepo {
	return &PostgresExpenseRepo{DB: db}
}

func (r *PostgresExpenseRepo) CreateExpense(expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = newID()
	}
	if expense.Category == "" {
		expense.Category = models.CategoryOther
	}
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	_, err := r.DB.Exec(`
		INSERT INTO expenses (id, project_id, title, amount, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, expense.ID, expense.ProjectID, expense.Title, expense.Amount, expense.Category,
		expense.CreatedAt, expense.UpdatedAt)
	return err
}

func (r *PostgresExpenseRepo) GetExpenses(projectID string) ([]*models.Expense, error) {
	query := `
		SELECT id, project_id, title, amount, category, created_at, updated_at
		FROM expenses
	`
	var rows *sql.Rows
	var err error
	if projectID != "" {
		rows, err = r.DB.Query(query+` WHERE project_id=$1 ORDER BY created_at DESC`, projectID)
	} else {
		rows, err = r.DB.Query(query + ` ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.ProjectID, &expense.Title,
			&expense.Amount, &expense.Category, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *PostgresExpenseRepo) GetExpenseByID(id string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := r.DB.QueryRow(`
		SELECT id, project_id, title, amount, category, created_at, updated_at
		FROM expenses
		WHERE id=$1
	`, id).Scan(&expense.ID, &expense.ProjectID, &expense.Title,
		&expense.Amount, &expense.Category, &expense.CreatedAt, &expense.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return expense, nil
}

func (r *PostgresExpenseRepo) UpdateExpense(expense *models.Expense) error {
	expense.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Exec(`
		UPDATE expenses
		SET title=$1, amount=$2, category=$3, updated_at=$4
		WHERE id=$5
	`, expense.Title, expense.Amount, expense.Category, expense.UpdatedAt, expense.ID)
	return err
}

func (r *PostgresExpenseRepo) DeleteExpense(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresExpenseRepo) DeleteExpensesByProject(projectID string) error {
	_, err := r.DB.Exec(`DELETE FROM expenses WHERE project_id=$1`, projectID)
	return err
}
