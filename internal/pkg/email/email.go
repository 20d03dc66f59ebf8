package email

import (
	"fmt"
	"html"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/config"
)

const maxRetries = 3

// EmailService sends attendance alerts to the supervisor inbox. It is an
// optional secondary channel next to SSE: when SMTP is not configured every
// send is a logged no-op.
type EmailService interface {
	SendAlert(title, message string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

// SendAlert sends a plain alert email with the notification title as subject.
func (s *emailServiceImpl) SendAlert(title, message string) error {
	body := fmt.Sprintf(
		"<html><body><h3>%s</h3><p>%s</p></body></html>",
		html.EscapeString(title),
		html.EscapeString(message),
	)
	return s.sendHTML(s.cfg.AlertTo, title, body)
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	if !s.cfg.Enabled {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
