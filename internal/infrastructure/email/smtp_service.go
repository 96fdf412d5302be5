package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/DaSparky/daham-blogsite/internal/config"
	"github.com/DaSparky/daham-blogsite/pkg/logger"
)

// FeedbackData is a contact form submission to relay.
type FeedbackData struct {
	Name    string
	Email   string
	Message string
}

// EmailService relays contact form feedback to the site owner.
// Kept as an interface so the synchronous SMTP send can be swapped
// for an async dispatcher without touching route logic.
type EmailService interface {
	SendFeedback(ctx context.Context, data FeedbackData) error
}

type smtpEmailService struct {
	addr     string // host:port
	account  string // authenticated sender
	password string
	to       string // fixed feedback recipient
	host     string
}

func NewSMTPEmailService(cfg *config.MailConfig) EmailService {
	return &smtpEmailService{
		addr:     cfg.Host + ":" + cfg.Port,
		account:  cfg.Account,
		password: cfg.Password,
		to:       cfg.To,
		host:     cfg.Host,
	}
}

// SendFeedback composes the plaintext feedback message and submits it
// over an authenticated, STARTTLS-upgraded SMTP connection. Blocking:
// the contact page reports the outcome of this call synchronously.
func (s *smtpEmailService) SendFeedback(ctx context.Context, data FeedbackData) error {
	subject := "Feedback BlogTest site"
	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s",
		data.Name, data.Email, data.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.account, s.to, subject, body))

	// smtp.SendMail negotiates STARTTLS before authenticating when
	// the server advertises it, which port 587 relays do.
	auth := smtp.PlainAuth("", s.account, s.password, s.host)
	if err := smtp.SendMail(s.addr, auth, s.account, []string{s.to}, msg); err != nil {
		logger.Error("failed to relay feedback email", err)
		return fmt.Errorf("send feedback: %w", err)
	}

	logger.Info("feedback email relayed", map[string]interface{}{
		"from": data.Email,
	})
	return nil
}
