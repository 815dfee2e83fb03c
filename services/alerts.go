package services

import (
	"context"
	"fmt"
	"log/slog"

	"budgettracker/models"
	"budgettracker/repository"
)

// BudgetAlerts re-evaluates a project's full expense set and broadcasts an
// over-budget email to every member. There is no de-duplication: a project
// that stays over budget gets a fresh alert after every expense mutation.
type BudgetAlerts struct {
	Projects repository.ProjectRepository
	Expenses repository.ExpenseRepository
	Users    repository.UserRepository
	Mailer   *Mailer
	Log      *slog.Logger
}

func (a *BudgetAlerts) CheckProject(ctx context.Context, projectID string) error {
	project, err := a.Projects.GetProjectByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return nil
	}

	expenses, err := a.Expenses.GetExpenses(projectID)
	if err != nil {
		return err
	}

	totalSpent := TotalSpent(expenses)
	if totalSpent <= project.Budget {
		return nil
	}

	users, err := a.Users.GetUsersByIDs(project.Users)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		a.Log.Warn("project over budget but has no members to alert",
			"project", project.ID, "total_spent", totalSpent)
		return nil
	}

	recipients := make([]Recipient, 0, len(users))
	for _, u := range users {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		recipients = append(recipients, Recipient{Email: u.Email, Name: name})
	}

	overAmount := totalSpent - project.Budget
	percentage := totalSpent / project.Budget * 100

	subject := fmt.Sprintf("⚠️ Budget Alert: %s is Over Budget", project.Name)
	html := budgetAlertHTML(project, totalSpent, overAmount, percentage)

	return a.Mailer.Send(ctx, recipients, subject, html)
}

func budgetAlertHTML(project *models.Project, totalSpent, overAmount, percentage float64) string {
	return fmt.Sprintf(`
		<h2 style="color: #ef4444;">⚠️ Budget Alert</h2>
		<p>Your project <strong>%s</strong> has exceeded its budget.</p>
		<p><strong>Budget:</strong> $%.2f</p>
		<p><strong>Total Spent:</strong> $%.2f</p>
		<p style="color: #ef4444;"><strong>Over Budget By:</strong> $%.2f</p>
		<p><strong>Budget Used:</strong> %.2f%%</p>
		<p>This is an automated alert from your Budget Tracker system.</p>
	`, project.Name, project.Budget, totalSpent, overAmount, percentage)
}
