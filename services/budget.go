package services

import (
	"fmt"

	"budgettracker/models"
)

// BudgetSummary is the result of evaluating a project's spend against its
// budget.
type BudgetSummary struct {
	TotalSpent float64
	OverBudget bool
	Feedback   string
}

// EvaluateBudget sums the given expenses and compares the total against the
// project budget. The expense list is the project's full current set, not a
// delta.
func EvaluateBudget(project *models.Project, expenses []*models.Expense) BudgetSummary {
	total := TotalSpent(expenses)
	return BudgetSummary{
		TotalSpent: total,
		OverBudget: total > project.Budget,
		Feedback:   BudgetFeedback(project, expenses),
	}
}

// TotalSpent returns the sum of expense amounts; an empty list sums to 0.
func TotalSpent(expenses []*models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// BudgetFeedback produces the one-sentence spend summary shown on project
// views. Ties for the highest expense go to the earliest in input order.
func BudgetFeedback(project *models.Project, expenses []*models.Expense) string {
	if len(expenses) == 0 {
		return "No expenses recorded yet."
	}

	total := TotalSpent(expenses)
	highest := expenses[0]
	for _, e := range expenses[1:] {
		if e.Amount > highest.Amount {
			highest = e
		}
	}

	percentage := total / project.Budget * 100
	return fmt.Sprintf("It seems you are using %.2f%% of your budget, mostly on %q.",
		percentage, highest.Title)
}
