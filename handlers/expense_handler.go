package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"budgettracker/models"
	"budgettracker/repository"
	"budgettracker/services"

	"github.com/go-chi/chi/v5"
)

type ExpenseHandler struct {
	Expenses   repository.ExpenseRepository
	Projects   repository.ProjectRepository
	Classifier *services.Classifier
	Alerts     *services.BudgetAlerts
	Log        *slog.Logger
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Expenses.GetExpenses(r.URL.Query().Get("projectId"))
	if err != nil {
		h.Log.Error("list expenses", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	respondOK(w, expenses)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	expense, err := h.Expenses.GetExpenseByID(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("get expense", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if expense == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}
	respondOK(w, expense)
}

// Create validates and persists a new expense, classifying the title first.
// The over-budget recheck runs in the background; the response never waits
// for it.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProjectID string   `json:"projectId"`
		Title     string   `json:"title"`
		Amount    *float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	if body.ProjectID == "" || body.Title == "" || body.Amount == nil || *body.Amount < 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	project, err := h.Projects.GetProjectByID(body.ProjectID)
	if err != nil {
		h.Log.Error("get project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	expense := &models.Expense{
		ProjectID: body.ProjectID,
		Title:     body.Title,
		Amount:    *body.Amount,
		Category:  h.Classifier.Categorize(r.Context(), body.Title),
	}
	if err := h.Expenses.CreateExpense(expense); err != nil {
		h.Log.Error("create expense", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	h.dispatchBudgetCheck(expense.ProjectID)

	respondOK(w, expense)
}

// Update applies a partial update. A negative amount is rejected; a category
// outside the fixed set is rejected.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	expense, err := h.Expenses.GetExpenseByID(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("get expense", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if expense == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	var body struct {
		Title    string   `json:"title"`
		Amount   *float64 `json:"amount"`
		Category string   `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	if body.Title != "" {
		expense.Title = body.Title
	}
	if body.Amount != nil {
		if *body.Amount < 0 {
			respondError(w, http.StatusBadRequest, CodeInvalidBody)
			return
		}
		expense.Amount = *body.Amount
	}
	if body.Category != "" {
		if !models.IsValidCategory(body.Category) {
			respondError(w, http.StatusBadRequest, CodeInvalidBody)
			return
		}
		expense.Category = body.Category
	}

	if err := h.Expenses.UpdateExpense(expense); err != nil {
		h.Log.Error("update expense", "expense", expense.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	h.dispatchBudgetCheck(expense.ProjectID)

	respondOK(w, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Expenses.DeleteExpense(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("delete expense", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Response{OK: true})
}

func (h *ExpenseHandler) dispatchBudgetCheck(projectID string) {
	services.Dispatch(h.Log, "over-budget check", func(ctx context.Context) error {
		return h.Alerts.CheckProject(ctx, projectID)
	})
}
