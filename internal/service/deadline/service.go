// Package deadline watches open cases and e-mails assignees when a case
// deadline comes close, passes, or the SLA due date is missed.
package deadline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/telemetry"
)

type caseRepo interface {
	ListOpen(ctx context.Context) ([]domain.Case, error)
}

type staffRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Staff, error)
}

type mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// signal is the alerting state of one case at one check.
type signal struct {
	deadline   domain.DeadlineType
	slaOverdue bool
}

func (s signal) quiet() bool {
	return s.deadline == domain.DeadlineNone && !s.slaOverdue
}

// Alert is one case that needs its assignee's attention.
type Alert struct {
	Case     domain.Case
	Deadline domain.DeadlineStatus
	SLADue   bool

	sig signal
}

// Report summarizes one monitor pass.
type Report struct {
	Checked int
	Alerts  int
	Mailed  int
}

// Service is the periodic deadline/SLA monitor.
type Service struct {
	log        *slog.Logger
	cases      caseRepo
	staff      staffRepo
	mail       mailer
	soonWindow time.Duration
	now        func() time.Time

	mu   sync.Mutex
	seen map[uuid.UUID]signal

	alerts metric.Int64Counter
}

// NewService creates a deadline monitor. A non-positive soonWindow falls back
// to domain.DefaultSoonWindow.
func NewService(logger *slog.Logger, cases caseRepo, staff staffRepo, m mailer, soonWindow time.Duration) *Service {
	if soonWindow <= 0 {
		soonWindow = domain.DefaultSoonWindow
	}
	alerts, _ := telemetry.Meter("deadline").Int64Counter("casedesk.deadline.alerts",
		metric.WithDescription("Case deadline and SLA alerts mailed to assignees"))
	return &Service{
		log:        logger.With("service", "deadline"),
		cases:      cases,
		staff:      staff,
		mail:       m,
		soonWindow: soonWindow,
		now:        time.Now,
		seen:       make(map[uuid.UUID]signal),
		alerts:     alerts,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Check evaluates every open case once. A case is reported only when its
// signal changes, so an assignee gets one mail when a deadline becomes
// "soon" and another when it becomes overdue, not one per tick.
// Mail failures are logged and do not fail the pass; the undelivered
// signals are retried on the next pass.
func (s *Service) Check(ctx context.Context) (Report, error) {
	cases, err := s.cases.ListOpen(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("deadline.Check list cases: %w", err)
	}

	now := s.now()
	byAssignee := make(map[uuid.UUID][]Alert)
	open := make(map[uuid.UUID]struct{}, len(cases))

	s.mu.Lock()
	for _, c := range cases {
		open[c.ID] = struct{}{}
		status := domain.ClassifyDeadline(c.Deadline, now, s.soonWindow)
		sig := signal{deadline: status.Type, slaOverdue: c.SLADue != nil && now.After(*c.SLADue)}

		prev, known := s.seen[c.ID]
		if sig.quiet() {
			delete(s.seen, c.ID)
			continue
		}
		if known && prev == sig {
			continue
		}
		if c.AssignedTo == nil {
			s.seen[c.ID] = sig
			continue
		}
		byAssignee[*c.AssignedTo] = append(byAssignee[*c.AssignedTo],
			Alert{Case: c, Deadline: status, SLADue: sig.slaOverdue, sig: sig})
	}
	for id := range s.seen {
		if _, ok := open[id]; !ok {
			delete(s.seen, id)
		}
	}
	s.mu.Unlock()

	report := Report{Checked: len(cases)}
	for assignee, alerts := range byAssignee {
		report.Alerts += len(alerts)
		mailed, err := s.notify(ctx, assignee, alerts)
		if err != nil {
			continue
		}
		if mailed {
			report.Mailed++
		}
		s.markSeen(alerts)
	}

	if report.Alerts > 0 {
		s.log.InfoContext(ctx, "deadline check",
			slog.Int("checked", report.Checked),
			slog.Int("alerts", report.Alerts),
			slog.Int("mailed", report.Mailed))
	}
	return report, nil
}

// Run is Check shaped as a scheduler job.
func (s *Service) Run(ctx context.Context) error {
	_, err := s.Check(ctx)
	return err
}

func (s *Service) markSeen(alerts []Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range alerts {
		s.seen[a.Case.ID] = a.sig
	}
}

// notify mails the digest to assignee. A deleted assignee is not an error:
// nobody can receive the alerts, so they are settled without mail.
func (s *Service) notify(ctx context.Context, assignee uuid.UUID, alerts []Alert) (bool, error) {
	member, err := s.staff.GetByID(ctx, assignee)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		s.log.ErrorContext(ctx, "load assignee",
			slog.String("staff_id", assignee.String()),
			slog.String("error", err.Error()))
		return false, err
	}

	if err := s.mail.Send(ctx, digest(member, alerts)); err != nil {
		s.log.WarnContext(ctx, "deadline mail not delivered",
			slog.String("staff_id", assignee.String()),
			slog.String("error", err.Error()))
		return false, err
	}
	s.alerts.Add(ctx, int64(len(alerts)))
	return true, nil
}

func digest(member domain.Staff, alerts []Alert) domain.MailMessage {
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Case.Title < alerts[j].Case.Title
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThe following cases need attention:\n\n", member.Name)
	for _, a := range alerts {
		var parts []string
		if a.Deadline.Type != domain.DeadlineNone {
			parts = append(parts, a.Deadline.Message)
		}
		if a.SLADue {
			parts = append(parts, "SLA overdue")
		}
		fmt.Fprintf(&b, "- %s: %s\n", a.Case.Title, strings.Join(parts, ", "))
	}

	subject := "Case deadlines need attention"
	if len(alerts) == 1 {
		subject = fmt.Sprintf("Case deadline: %s", alerts[0].Case.Title)
	}
	return domain.MailMessage{To: member.Email, Subject: subject, Text: b.String()}
}
