package repository

import "budgettracker/models"

// ExpenseRepository defines the interface for expense operations
type ExpenseRepository interface {
	CreateExpense(expense *models.Expense) error
	// GetExpenses returns expenses newest-first, filtered by project when
	// projectID is non-empty.
	GetExpenses(projectID string) ([]*models.Expense, error)
	GetExpenseByID(id string) (*models.Expense, error)
	UpdateExpense(expense *models.Expense) error
	// DeleteExpense reports whether a record was actually removed.
	DeleteExpense(id string) (bool, error)
	DeleteExpensesByProject(projectID string) error
}
