package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"authflow/internal/config"
)

// MailtrapMailer sends emails through the Mailtrap send API.
type MailtrapMailer struct {
	cfg    config.MailtrapConfig
	client *http.Client
}

func NewMailtrapMailer(cfg config.MailtrapConfig) *MailtrapMailer {
	return &MailtrapMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From     address   `json:"from"`
	To       []address `json:"to"`
	Subject  string    `json:"subject"`
	HTML     string    `json:"html"`
	Category string    `json:"category,omitempty"`
}

func (m *MailtrapMailer) SendVerificationEmail(ctx context.Context, to, code string) error {
	body, err := render(verificationTmpl, map[string]string{"Code": code})
	if err != nil { return err }
	return m.send(ctx, to, "Verify your email", body, "Email Verification")
}

func (m *MailtrapMailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	body, err := render(welcomeTmpl, map[string]string{"Name": name})
	if err != nil { return err }
	return m.send(ctx, to, "Welcome!", body, "Welcome")
}

func (m *MailtrapMailer) SendPasswordResetEmail(ctx context.Context, to, resetURL string) error {
	body, err := render(passwordResetTmpl, map[string]string{"ResetURL": resetURL})
	if err != nil { return err }
	return m.send(ctx, to, "Reset your password", body, "Password Reset")
}

func (m *MailtrapMailer) SendResetSuccessEmail(ctx context.Context, to string) error {
	body, err := render(resetSuccessTmpl, nil)
	if err != nil { return err }
	return m.send(ctx, to, "Password reset successful", body, "Password Reset")
}

func (m *MailtrapMailer) send(ctx context.Context, to, subject, html, category string) error {
	payload := sendRequest{
		From:     address{Email: m.cfg.SenderEmail, Name: m.cfg.SenderName},
		To:       []address{{Email: to}},
		Subject:  subject,
		HTML:     html,
		Category: category,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint+"/api/send", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.WithFields(log.Fields{"status": resp.StatusCode, "category": category}).
			Error("mailtrap rejected email")
		return fmt.Errorf("send email: mailtrap returned %d: %s", resp.StatusCode, detail)
	}

	log.WithFields(log.Fields{"to": to, "category": category}).Debug("email dispatched")
	return nil
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
