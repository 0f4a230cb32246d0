// Package mail provides the transports used by the mail delivery core:
// an SMTP relay (primary) and an HTTP mail API (fallback).
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// SMTPConfig configures the SMTP transport.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTP sends mail through an authenticated SMTP relay.
type SMTP struct {
	cfg SMTPConfig
	log *slog.Logger
}

// NewSMTP creates an SMTP transport.
func NewSMTP(cfg SMTPConfig, logger *slog.Logger) *SMTP {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTP{cfg: cfg, log: logger.With("adapter", "smtp")}
}

// Name identifies the transport in logs and delivery errors.
func (s *SMTP) Name() string { return "smtp" }

// Send delivers one message over a fresh connection.
func (s *SMTP) Send(ctx context.Context, m domain.MailMessage) error {
	msg, err := buildMsg(s.cfg.From, m)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: send: %w", err)
	}

	s.log.DebugContext(ctx, "smtp message sent", slog.String("to", m.To))
	return nil
}

// Verify dials and authenticates against the relay without sending.
func (s *SMTP) Verify(ctx context.Context) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: verify: %w", err)
	}
	return client.Close()
}

func (s *SMTP) client() (*gomail.Client, error) {
	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp: create client: %w", err)
	}
	return client, nil
}

func buildMsg(from string, m domain.MailMessage) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("smtp: from %q: %w: %w", from, domain.ErrInvalidSender, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("smtp: to %q: %w: %w", m.To, domain.ErrInvalidRecipient, err)
	}
	msg.Subject(m.Subject)

	switch {
	case m.Text != "" && m.HTML != "":
		msg.SetBodyString(gomail.TypeTextPlain, m.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, m.HTML)
	case m.HTML != "":
		msg.SetBodyString(gomail.TypeTextHTML, m.HTML)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, m.Text)
	}
	return msg, nil
}
