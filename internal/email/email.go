package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

// Config carries the SendGrid credential and the verified sender address,
// both supplied through the environment.
type Config struct {
	APIKey string
	From   string
}

func ConfigFromEnv() Config {
	return Config{
		APIKey: os.Getenv("SENDGRID_API_KEY"),
		From:   os.Getenv("SENDGRID_FROM"),
	}
}

func (c Config) IsConfigured() bool {
	return c.APIKey != "" && c.From != ""
}

// Mailer sends HTML mail through the SendGrid v3 REST API.
type Mailer struct {
	cfg     Config
	baseURL string
	client  *http.Client
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		cfg:     cfg,
		baseURL: sendGridURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send delivers one HTML message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !m.cfg.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	payload := mailRequest{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: m.cfg.From},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: htmlBody}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, string(responseBody))
	}

	return nil
}
