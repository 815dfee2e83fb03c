package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBType      string
	MongoURL    string
	PostgresURL string

	JWTSecret string
	AppURL    string

	BrevoKey        string
	MailSenderName  string
	MailSenderEmail string

	OpenRouterKey string
	AIBaseURL     string
	AIModel       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DBType:      os.Getenv("DB_TYPE"),
		MongoURL:    os.Getenv("MONGO_URL"),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		AppURL:    os.Getenv("APP_URL"),

		BrevoKey:        os.Getenv("BREVO_KEY"),
		MailSenderName:  os.Getenv("MAIL_SENDER_NAME"),
		MailSenderEmail: os.Getenv("MAIL_SENDER_EMAIL"),

		OpenRouterKey: os.Getenv("OPENROUTER_KEY"),
		AIBaseURL:     os.Getenv("AI_BASE_URL"),
		AIModel:       os.Getenv("AI_MODEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "mongo"
	}
	if cfg.AppURL == "" {
		cfg.AppURL = "http://localhost:3000"
	}
	if cfg.MailSenderName == "" {
		cfg.MailSenderName = "Budget Tracker"
	}
	if cfg.MailSenderEmail == "" {
		cfg.MailSenderEmail = "noreply@budget-tracker.app"
	}
	if cfg.AIBaseURL == "" {
		cfg.AIBaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.AIModel == "" {
		cfg.AIModel = "gpt-4o-mini"
	}
	return cfg
}
