package main

import (
	"log/slog"
	"net/http"
	"os"

	"budgettracker/config"
	"budgettracker/db"
	"budgettracker/db/mongo"
	"budgettracker/db/postgres"
	"budgettracker/handlers"
	"budgettracker/repository"
	"budgettracker/routes"
	"budgettracker/services"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	var projectRepo repository.ProjectRepository
	var expenseRepo repository.ExpenseRepository
	var userRepo repository.UserRepository
	var inviteRepo repository.InviteRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		projectRepo = repository.NewPostgresProjectRepo(pg.Conn)
		expenseRepo = repository.NewPostgresExpenseRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		inviteRepo = repository.NewPostgresInviteRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		projectRepo = repository.NewMongoProjectRepo(mg.Client)
		expenseRepo = repository.NewMongoExpenseRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)
		inviteRepo = repository.NewMongoInviteRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Services
	mailer := services.NewMailer(cfg.BrevoKey, cfg.MailSenderName, cfg.MailSenderEmail,
		log.With("component", "mailer"))
	classifier := services.NewClassifier(cfg.OpenRouterKey, cfg.AIBaseURL, cfg.AIModel,
		log.With("component", "classifier"))
	alerts := &services.BudgetAlerts{
		Projects: projectRepo,
		Expenses: expenseRepo,
		Users:    userRepo,
		Mailer:   mailer,
		Log:      log.With("component", "alerts"),
	}

	// Handlers
	userHandler := &handlers.UserHandler{
		Users:     userRepo,
		JWTSecret: cfg.JWTSecret,
		Log:       log.With("component", "users"),
	}
	projectHandler := &handlers.ProjectHandler{
		Projects: projectRepo,
		Expenses: expenseRepo,
		Users:    userRepo,
		Log:      log.With("component", "projects"),
	}
	expenseHandler := &handlers.ExpenseHandler{
		Expenses:   expenseRepo,
		Projects:   projectRepo,
		Classifier: classifier,
		Alerts:     alerts,
		Log:        log.With("component", "expenses"),
	}
	inviteHandler := &handlers.InviteHandler{
		Projects: projectRepo,
		Users:    userRepo,
		Invites:  inviteRepo,
		Mailer:   mailer,
		AppURL:   cfg.AppURL,
		Log:      log.With("component", "invites"),
	}

	router := routes.SetupRoutes(cfg.JWTSecret, log,
		userHandler, projectHandler, expenseHandler, inviteHandler)

	log.Info("server running", "port", cfg.Port, "db", cfg.DBType)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		panic(err)
	}
}
