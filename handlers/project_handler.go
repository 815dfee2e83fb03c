package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"budgettracker/models"
	"budgettracker/repository"
	"budgettracker/services"

	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	Projects repository.ProjectRepository
	Expenses repository.ExpenseRepository
	Users    repository.UserRepository
	Log      *slog.Logger
}

// projectListItem decorates a project with its expenses and budget state for
// the list view.
type projectListItem struct {
	models.Project
	Expenses       []*models.Expense `json:"expenses"`
	TotalSpent     float64           `json:"totalSpent"`
	OverBudget     bool              `json:"overBudget"`
	BudgetFeedback string            `json:"budgetFeedback"`
}

// projectDetail is the single-project view with members resolved.
type projectDetail struct {
	models.Project
	Users          []models.UserRef  `json:"users"`
	Expenses       []*models.Expense `json:"expenses"`
	BudgetFeedback string            `json:"budgetFeedback"`
}

// List returns all projects newest-first, each decorated with expenses,
// total spend, over-budget state, and best-effort feedback.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.GetAllProjects()
	if err != nil {
		h.Log.Error("list projects", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	items := make([]projectListItem, 0, len(projects))
	for _, project := range projects {
		expenses, err := h.Expenses.GetExpenses(project.ID)
		if err != nil {
			h.Log.Error("list project expenses", "project", project.ID, "error", err)
			respondError(w, http.StatusInternalServerError, CodeServerError)
			return
		}
		if expenses == nil {
			expenses = []*models.Expense{}
		}

		summary := services.EvaluateBudget(project, expenses)
		items = append(items, projectListItem{
			Project:        *project,
			Expenses:       expenses,
			TotalSpent:     summary.TotalSpent,
			OverBudget:     summary.OverBudget,
			BudgetFeedback: summary.Feedback,
		})
	}

	respondOK(w, items)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.GetProjectByID(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("get project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	users, err := memberRefs(h.Users, project.Users)
	if err != nil {
		h.Log.Error("resolve project members", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	expenses, err := h.Expenses.GetExpenses(project.ID)
	if err != nil {
		h.Log.Error("get project expenses", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}

	respondOK(w, projectDetail{
		Project:        *project,
		Users:          users,
		Expenses:       expenses,
		BudgetFeedback: services.BudgetFeedback(project, expenses),
	})
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string   `json:"name"`
		Budget      *float64 `json:"budget"`
		Description string   `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	if body.Name == "" || body.Budget == nil || *body.Budget < 0 || body.Description == "" {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	project := &models.Project{
		Name:        body.Name,
		Budget:      *body.Budget,
		Description: body.Description,
	}
	if err := h.Projects.CreateProject(project); err != nil {
		h.Log.Error("create project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	respondOK(w, project)
}

// Update applies a partial update. A negative budget is silently ignored
// rather than rejected.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.GetProjectByID(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("get project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	var body struct {
		Name   string   `json:"name"`
		Budget *float64 `json:"budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	if body.Name != "" {
		project.Name = body.Name
	}
	if body.Budget != nil && *body.Budget >= 0 {
		project.Budget = *body.Budget
	}

	if err := h.Projects.UpdateProject(project); err != nil {
		h.Log.Error("update project", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	respondOK(w, project)
}

// Delete removes a project and all its expenses. The two writes are not
// atomic; a crash in between leaves orphaned expenses.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.GetProjectByID(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("get project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	if err := h.Expenses.DeleteExpensesByProject(project.ID); err != nil {
		h.Log.Error("delete project expenses", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if err := h.Projects.DeleteProject(project.ID); err != nil {
		h.Log.Error("delete project", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	writeJSON(w, http.StatusOK, Response{OK: true})
}

// AddUserByEmail adds a member by email, creating the user on first
// reference. Re-adding an existing member signals ALREADY_EXISTS.
func (h *ProjectHandler) AddUserByEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		respondError(w, http.StatusBadRequest, CodeInvalidBody)
		return
	}

	project, err := h.Projects.GetProjectByID(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("get project", "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, CodeNotFound)
		return
	}

	user, err := findOrCreateUserByEmail(h.Users, body.Email, "")
	if err != nil {
		h.Log.Error("find or create user", "email", body.Email, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	if project.HasUser(user.ID) {
		respondError(w, http.StatusBadRequest, CodeAlreadyExists)
		return
	}

	project.Users = append(project.Users, user.ID)
	if err := h.Projects.UpdateProject(project); err != nil {
		h.Log.Error("update project members", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	users, err := memberRefs(h.Users, project.Users)
	if err != nil {
		h.Log.Error("resolve project members", "project", project.ID, "error", err)
		respondError(w, http.StatusInternalServerError, CodeServerError)
		return
	}

	respondOK(w, map[string]any{"users": users})
}
