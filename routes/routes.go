package routes

import (
	"log/slog"
	"net/http"

	"budgettracker/handlers"
	"budgettracker/middleware"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(
	jwtSecret string,
	log *slog.Logger,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	expenseHandler *handlers.ExpenseHandler,
	inviteHandler *handlers.InviteHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CORS)
	r.Use(middleware.Recover(log))

	// Public
	r.Post("/user/signup", userHandler.Signup)
	r.Post("/user/login", userHandler.Login)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))

		r.Get("/project", projectHandler.List)
		r.Get("/project/{id}", projectHandler.Get)
		r.Post("/project", projectHandler.Create)
		r.Put("/project/{id}", projectHandler.Update)
		r.Delete("/project/{id}", projectHandler.Delete)

		r.Get("/expense", expenseHandler.List)
		r.Get("/expense/{id}", expenseHandler.Get)
		r.Post("/expense", expenseHandler.Create)
		r.Put("/expense/{id}", expenseHandler.Update)
		r.Delete("/expense/{id}", expenseHandler.Delete)
	})

	// TODO: these two ship unauthenticated because the SPA calls them before
	// a session exists; decide on an access-control story before exposing
	// the API publicly.
	r.Put("/project/{id}/add-user-by-email", projectHandler.AddUserByEmail)
	r.Put("/invite/{projectId}", inviteHandler.Invite)

	return r
}
