package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultBrevoURL = "https://api.brevo.com/v3"

// Recipient is a single addressee in the transactional-email payload.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Mailer sends transactional email through the Brevo HTTP API. Without an
// API key every send is a logged no-op, so callers never have to care
// whether mail is configured.
type Mailer struct {
	apiKey      string
	baseURL     string
	senderName  string
	senderEmail string
	client      *http.Client
	log         *slog.Logger
}

func NewMailer(apiKey, senderName, senderEmail string, log *slog.Logger) *Mailer {
	return &Mailer{
		apiKey:      apiKey,
		baseURL:     defaultBrevoURL,
		senderName:  senderName,
		senderEmail: senderEmail,
		client:      &http.Client{Timeout: 15 * time.Second},
		log:         log,
	}
}

// WithBaseURL points the mailer at a different API endpoint. Used by tests.
func (m *Mailer) WithBaseURL(url string) *Mailer {
	m.baseURL = url
	return m
}

func (m *Mailer) Send(ctx context.Context, to []Recipient, subject, htmlContent string) error {
	if m.apiKey == "" {
		m.log.Warn("email service not configured (missing BREVO_KEY), mail not sent",
			"subject", subject, "recipients", len(to))
		return nil
	}

	payload := map[string]any{
		"sender": map[string]string{
			"name":  m.senderName,
			"email": m.senderEmail,
		},
		"to":          to,
		"subject":     subject,
		"htmlContent": htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("brevo: unexpected status %d", resp.StatusCode)
	}

	m.log.Info("email sent", "subject", subject, "recipients", len(to))
	return nil
}
