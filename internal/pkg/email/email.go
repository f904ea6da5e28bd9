package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service sends transactional emails. A disabled SMTP config turns every
// send into a logged no-op so request flows never depend on mail delivery.
type Service interface {
	SendRequestDecision(to, employeeName, requestKind, decision, detail string) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type requestDecisionData struct {
	EmployeeName string
	RequestKind  string
	Decision     string
	Detail       string
}

// SendRequestDecision tells an employee their request was approved or rejected.
func (s *serviceImpl) SendRequestDecision(to, employeeName, requestKind, decision, detail string) error {
	if !s.cfg.Enabled {
		slog.Debug("SMTP disabled, skipping decision email", "to", to)
		return nil
	}

	data := requestDecisionData{
		EmployeeName: employeeName,
		RequestKind:  requestKind,
		Decision:     decision,
		Detail:       detail,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "request_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Your %s request was %s", requestKind, decision)
	return s.sendHTML(to, subject, body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.From, to, subject, htmlBody,
	))

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
		if err == nil {
			return nil
		}
		slog.Warn("Email send failed, retrying", "to", to, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, err)
}
