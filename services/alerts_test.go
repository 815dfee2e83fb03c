package services

import (
	"context"
	"sync/atomic"
	"testing"

	"budgettracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjects struct {
	project *models.Project
}

func (s *stubProjects) CreateProject(p *models.Project) error       { return nil }
func (s *stubProjects) GetAllProjects() ([]*models.Project, error)  { return nil, nil }
func (s *stubProjects) UpdateProject(p *models.Project) error       { return nil }
func (s *stubProjects) DeleteProject(id string) error               { return nil }
func (s *stubProjects) GetProjectByID(id string) (*models.Project, error) {
	if s.project != nil && s.project.ID == id {
		return s.project, nil
	}
	return nil, nil
}

type stubExpenses struct {
	expenses []*models.Expense
}

func (s *stubExpenses) CreateExpense(e *models.Expense) error           { return nil }
func (s *stubExpenses) GetExpenseByID(id string) (*models.Expense, error) { return nil, nil }
func (s *stubExpenses) UpdateExpense(e *models.Expense) error           { return nil }
func (s *stubExpenses) DeleteExpense(id string) (bool, error)           { return false, nil }
func (s *stubExpenses) DeleteExpensesByProject(projectID string) error  { return nil }
func (s *stubExpenses) GetExpenses(projectID string) ([]*models.Expense, error) {
	return s.expenses, nil
}

type stubUsers struct {
	users []*models.User
}

func (s *stubUsers) CreateUser(u *models.User) error                  { return nil }
func (s *stubUsers) GetUserByEmail(email string) (*models.User, error) { return nil, nil }
func (s *stubUsers) UpdateUser(u *models.User) error                  { return nil }
func (s *stubUsers) GetUsersByIDs(ids []string) ([]*models.User, error) {
	return s.users, nil
}

func newAlerts(t *testing.T, project *models.Project, expenses []*models.Expense,
	users []*models.User, calls *atomic.Int64, last *sentMail) *BudgetAlerts {
	t.Helper()
	srv := brevoServer(t, calls, last)
	return &BudgetAlerts{
		Projects: &stubProjects{project: project},
		Expenses: &stubExpenses{expenses: expenses},
		Users:    &stubUsers{users: users},
		Mailer: NewMailer("test-key", "Budget Tracker", "noreply@budget-tracker.app",
			testLogger()).WithBaseURL(srv.URL),
		Log: testLogger(),
	}
}

func TestCheckProjectSendsAlertWhenOverBudget(t *testing.T) {
	var calls atomic.Int64
	var last sentMail

	project := &models.Project{ID: "p1", Name: "Launch", Budget: 100, Users: []string{"u1", "u2"}}
	expenses := []*models.Expense{{ProjectID: "p1", Title: "Office Rent", Amount: 120}}
	users := []*models.User{
		{ID: "u1", Name: "Ana", Email: "ana@x.com"},
		{ID: "u2", Email: "no-name@x.com"},
	}

	a := newAlerts(t, project, expenses, users, &calls, &last)
	require.NoError(t, a.CheckProject(context.Background(), "p1"))

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, "⚠️ Budget Alert: Launch is Over Budget", last.Subject)
	require.Len(t, last.To, 2)
	assert.Equal(t, "Ana", last.To[0].Name)
	// members without a display name fall back to the email
	assert.Equal(t, "no-name@x.com", last.To[1].Name)
	assert.Contains(t, last.HTMLContent, "$100.00")
	assert.Contains(t, last.HTMLContent, "$120.00")
	assert.Contains(t, last.HTMLContent, "$20.00")
	assert.Contains(t, last.HTMLContent, "120.00%")
}

func TestCheckProjectUnderBudgetSendsNothing(t *testing.T) {
	var calls atomic.Int64
	var last sentMail

	project := &models.Project{ID: "p1", Name: "Launch", Budget: 100, Users: []string{"u1"}}
	expenses := []*models.Expense{{ProjectID: "p1", Title: "Coffee", Amount: 40}}
	users := []*models.User{{ID: "u1", Name: "Ana", Email: "ana@x.com"}}

	a := newAlerts(t, project, expenses, users, &calls, &last)
	require.NoError(t, a.CheckProject(context.Background(), "p1"))
	assert.Equal(t, int64(0), calls.Load())
}

func TestCheckProjectExactlyAtBudgetSendsNothing(t *testing.T) {
	var calls atomic.Int64
	var last sentMail

	project := &models.Project{ID: "p1", Name: "Launch", Budget: 100, Users: []string{"u1"}}
	expenses := []*models.Expense{{ProjectID: "p1", Title: "Coffee", Amount: 100}}
	users := []*models.User{{ID: "u1", Name: "Ana", Email: "ana@x.com"}}

	a := newAlerts(t, project, expenses, users, &calls, &last)
	require.NoError(t, a.CheckProject(context.Background(), "p1"))
	assert.Equal(t, int64(0), calls.Load())
}

func TestCheckProjectMissingProjectIsNoOp(t *testing.T) {
	var calls atomic.Int64
	var last sentMail

	a := newAlerts(t, nil, nil, nil, &calls, &last)
	require.NoError(t, a.CheckProject(context.Background(), "missing"))
	assert.Equal(t, int64(0), calls.Load())
}

func TestCheckProjectNoMembersIsNoOp(t *testing.T) {
	var calls atomic.Int64
	var last sentMail

	project := &models.Project{ID: "p1", Name: "Launch", Budget: 100}
	expenses := []*models.Expense{{ProjectID: "p1", Title: "Office Rent", Amount: 500}}

	a := newAlerts(t, project, expenses, nil, &calls, &last)
	require.NoError(t, a.CheckProject(context.Background(), "p1"))
	assert.Equal(t, int64(0), calls.Load())
}
