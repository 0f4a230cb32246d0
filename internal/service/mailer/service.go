// Package mailer delivers transactional mail over a primary transport with a
// fallback.
//
// A send walks an explicit list of stages built up front: the primary
// transport with the configured retry count, then exactly one fallback try.
// When the primary is not configured, or failed verification at startup, the
// fallback gets the full retry count instead. Attempts are strictly
// sequential.
package mailer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/telemetry"
)

// transport sends one message.
type transport interface {
	Name() string
	Send(ctx context.Context, msg domain.MailMessage) error
}

// verifier is implemented by transports that can check their connection.
type verifier interface {
	Verify(ctx context.Context) error
}

const (
	labelPrimary  = "primary"
	labelFallback = "fallback"
)

// stage is one transport and how many times to try it.
type stage struct {
	label     string
	transport transport
	tries     int
}

// Service is the mail delivery core.
type Service struct {
	log       *slog.Logger
	primary   transport
	fallback  transport
	retries   int
	baseDelay time.Duration

	primaryDisabled atomic.Bool

	sent   metric.Int64Counter
	failed metric.Int64Counter
}

// NewService creates a mailer. Either transport may be nil.
func NewService(logger *slog.Logger, primary, fallback transport, cfg config.MailConfig) *Service {
	m := telemetry.Meter("mailer")
	sent, _ := m.Int64Counter("casedesk.mail.sent",
		metric.WithDescription("Messages delivered, by transport"))
	failed, _ := m.Int64Counter("casedesk.mail.attempt_failures",
		metric.WithDescription("Failed delivery attempts, by transport"))

	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	return &Service{
		log:       logger.With("service", "mailer"),
		primary:   primary,
		fallback:  fallback,
		retries:   retries,
		baseDelay: cfg.BaseDelay,
		sent:      sent,
		failed:    failed,
	}
}

// VerifyPrimary checks the primary transport once. A failure is logged and
// routes every later send straight to the fallback; it never aborts startup.
func (s *Service) VerifyPrimary(ctx context.Context) {
	if s.primary == nil {
		s.log.InfoContext(ctx, "primary mail transport not configured, using fallback only")
		return
	}
	v, ok := s.primary.(verifier)
	if !ok {
		return
	}
	if err := v.Verify(ctx); err != nil {
		s.primaryDisabled.Store(true)
		s.log.WarnContext(ctx, "primary mail transport verification failed, disabled until restart",
			slog.String("transport", s.primary.Name()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.InfoContext(ctx, "primary mail transport verified", slog.String("transport", s.primary.Name()))
}

// PrimaryActive reports whether sends still start on the primary transport.
func (s *Service) PrimaryActive() bool {
	return s.primary != nil && !s.primaryDisabled.Load()
}

// plan returns the stages for one send.
func (s *Service) plan() []stage {
	if s.PrimaryActive() {
		stages := []stage{{label: labelPrimary, transport: s.primary, tries: s.retries}}
		if s.fallback != nil {
			stages = append(stages, stage{label: labelFallback, transport: s.fallback, tries: 1})
		}
		return stages
	}
	if s.fallback != nil {
		return []stage{{label: labelFallback, transport: s.fallback, tries: s.retries}}
	}
	return nil
}

// Send delivers msg. An empty recipient is a no-op. When every stage is
// exhausted the returned error is a *domain.DeliveryError; callers log it
// and carry on.
func (s *Service) Send(ctx context.Context, msg domain.MailMessage) error {
	msg.To = strings.TrimSpace(msg.To)
	if msg.To == "" {
		s.log.InfoContext(ctx, "mail skipped: no recipient", slog.String("subject", msg.Subject))
		return nil
	}

	derr := &domain.DeliveryError{To: msg.To}
	stages := s.plan()
	if len(stages) == 0 {
		s.log.WarnContext(ctx, "mail not sent: no transport configured", slog.String("to", msg.To))
		return derr
	}

	for _, st := range stages {
		if ctx.Err() != nil {
			break
		}
		err := s.run(ctx, st, msg, derr)
		if err == nil {
			s.sent.Add(ctx, 1, metric.WithAttributes(attribute.String("transport", st.label)))
			s.log.InfoContext(ctx, "mail sent",
				slog.String("to", msg.To),
				slog.String("transport", st.label),
				slog.Int("failed_attempts", len(derr.Attempts)),
			)
			return nil
		}
		if errors.Is(err, domain.ErrInvalidRecipient) {
			break
		}
	}

	s.log.WarnContext(ctx, "mail delivery failed",
		slog.String("to", msg.To),
		slog.String("error", derr.Error()),
	)
	return derr
}

// run tries one stage with linear back-off between its attempts, recording
// each failure in derr. Address errors end the stage after one attempt.
func (s *Service) run(ctx context.Context, st stage, msg domain.MailMessage, derr *domain.DeliveryError) error {
	attempt := 0
	op := func() error {
		attempt++
		err := st.transport.Send(ctx, msg)
		if err == nil {
			return nil
		}
		derr.Attempts = append(derr.Attempts, domain.DeliveryAttempt{
			Transport: st.label,
			Attempt:   attempt,
			Err:       err,
		})
		s.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("transport", st.label)))
		s.log.DebugContext(ctx, "mail attempt failed",
			slog.String("transport", st.label),
			slog.String("name", st.transport.Name()),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrInvalidRecipient) || errors.Is(err, domain.ErrInvalidSender) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(newLinearBackOff(s.baseDelay), uint64(st.tries-1)), ctx)
	return backoff.Retry(op, b)
}
