package notifications

import (
	"context"
	"fmt"
	"log"

	gomail "github.com/wneessen/go-mail"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// SMTPMailerImpl implements domain.Mailer over SMTP
type SMTPMailerImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// SMTPConfig carries the mail transport settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg SMTPConfig) domain.Mailer {
	return &SMTPMailerImpl{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send implements domain.Mailer. When SMTP is not configured the message
// is logged instead of sent, so local development works without a relay.
func (m *SMTPMailerImpl) Send(ctx context.Context, to, subject, token string) error {
	if m.host == "" {
		log.Printf("MAIL_MOCK: to=%s subject=%q token=%s", to, subject, token)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, token)

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.username),
		gomail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("failed to build smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
