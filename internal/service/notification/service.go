// Package notification maintains the customer notification feed.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/portal"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/scheduler"
	"github.com/heartmarshall/casedesk-backend/internal/telemetry"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type notificationRepo interface {
	Create(ctx context.Context, n domain.CustomerNotification) (domain.CustomerNotification, error)
	UpsertExternal(ctx context.Context, items []domain.CustomerNotification) (int, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.CustomerNotification, error)
}

type caseRepo interface {
	ListOpenCustomerIDs(ctx context.Context) ([]uuid.UUID, error)
}

type feedSource interface {
	FetchNotifications(ctx context.Context, customerID uuid.UUID) ([]portal.Notification, error)
}

type cooldownGuard interface {
	ShouldSkip(ctx context.Context, key string, now time.Time) bool
	RecordFailure(ctx context.Context, key string, permanent bool, now time.Time)
	RecordSuccess(ctx context.Context, key string)
}

// FeedResult is the outcome of one refresh. Suppressed is set when an active
// cooldown skipped the call, which is distinct from an empty feed.
type FeedResult struct {
	Fetched    int
	Inserted   int
	Suppressed bool
	Superseded bool
}

// Service implements the notification feed.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	cases         caseRepo
	source        feedSource
	guard         cooldownGuard
	now           func() time.Time

	mu    sync.Mutex
	feeds map[uuid.UUID]*scheduler.Latest

	suppressed metric.Int64Counter
}

// NewService creates a notification service.
func NewService(
	logger *slog.Logger,
	notifications notificationRepo,
	cases caseRepo,
	source feedSource,
	guard cooldownGuard,
) *Service {
	suppressed, _ := telemetry.Meter("notification").Int64Counter("casedesk.notification.suppressed",
		metric.WithDescription("Feed refreshes skipped by an active cooldown"))

	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		cases:         cases,
		source:        source,
		guard:         guard,
		now:           time.Now,
		feeds:         make(map[uuid.UUID]*scheduler.Latest),
		suppressed:    suppressed,
	}
}

// WithClock replaces the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) feed(customerID uuid.UUID) *scheduler.Latest {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.feeds[customerID]
	if !ok {
		l = &scheduler.Latest{}
		s.feeds[customerID] = l
	}
	return l
}

// pruneFeeds forgets fetch generations of customers outside keep.
func (s *Service) pruneFeeds(keep []uuid.UUID) {
	open := make(map[uuid.UUID]struct{}, len(keep))
	for _, id := range keep {
		open[id] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.feeds {
		if _, ok := open[id]; !ok {
			delete(s.feeds, id)
		}
	}
}

// Refresh pulls the portal feed of a customer and stores new items.
//
// A portal that does not offer the feed (404) starts the long cooldown and
// yields an empty result without error. Transient failures start the short
// cooldown and are returned.
func (s *Service) Refresh(ctx context.Context, customerID uuid.UUID) (FeedResult, error) {
	key := portal.EndpointKey(customerID)
	if s.guard.ShouldSkip(ctx, key, s.now()) {
		s.suppressed.Add(ctx, 1)
		s.log.DebugContext(ctx, "feed refresh suppressed", slog.String("customer_id", customerID.String()))
		return FeedResult{Suppressed: true}, nil
	}

	latest := s.feed(customerID)
	gen := latest.Begin()

	items, err := s.source.FetchNotifications(ctx, customerID)
	if err != nil {
		permanent := portal.IsPermanent(err)
		s.guard.RecordFailure(ctx, key, permanent, s.now())
		if permanent {
			return FeedResult{}, nil
		}
		return FeedResult{}, fmt.Errorf("notification.Refresh fetch: %w", err)
	}
	s.guard.RecordSuccess(ctx, key)

	if !latest.Accept(gen) {
		s.log.DebugContext(ctx, "feed result superseded", slog.String("customer_id", customerID.String()))
		return FeedResult{Fetched: len(items), Superseded: true}, nil
	}

	if len(items) == 0 {
		return FeedResult{}, nil
	}

	rows := make([]domain.CustomerNotification, 0, len(items))
	for _, it := range items {
		if it.ExternalID == "" {
			continue
		}
		extID := it.ExternalID
		createdAt := it.CreatedAt
		if createdAt.IsZero() {
			createdAt = s.now()
		}
		rows = append(rows, domain.CustomerNotification{
			ID:         uuid.New(),
			CustomerID: customerID,
			Source:     domain.NotificationSourcePortal,
			ExternalID: &extID,
			Message:    it.Message,
			CreatedAt:  createdAt,
		})
	}

	inserted, err := s.notifications.UpsertExternal(ctx, rows)
	if err != nil {
		return FeedResult{}, fmt.Errorf("notification.Refresh store: %w", err)
	}

	return FeedResult{Fetched: len(items), Inserted: inserted}, nil
}

// RefreshAll refreshes every customer with an open case. Individual failures
// are logged and do not stop the sweep.
func (s *Service) RefreshAll(ctx context.Context) error {
	ids, err := s.cases.ListOpenCustomerIDs(ctx)
	if err != nil {
		return fmt.Errorf("notification.RefreshAll list customers: %w", err)
	}
	s.pruneFeeds(ids)

	var fetched, suppressed, failed int
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		res, err := s.Refresh(ctx, id)
		switch {
		case err != nil:
			failed++
			s.log.WarnContext(ctx, "feed refresh failed",
				slog.String("customer_id", id.String()),
				slog.String("error", err.Error()))
		case res.Suppressed:
			suppressed++
		default:
			fetched += res.Fetched
		}
	}

	s.log.InfoContext(ctx, "feed sweep finished",
		slog.Int("customers", len(ids)),
		slog.Int("fetched", fetched),
		slog.Int("suppressed", suppressed),
		slog.Int("failed", failed),
	)
	return nil
}

// List returns stored notifications of a customer, newest first.
func (s *Service) List(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.CustomerNotification, error) {
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	items, err := s.notifications.ListByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	return items, nil
}

// NotifyTransition records a workflow notification for the case's customer.
func (s *Service) NotifyTransition(ctx context.Context, c domain.Case, stage domain.CaseStage) error {
	caseID := c.ID
	n := domain.CustomerNotification{
		ID:         uuid.New(),
		CustomerID: c.CustomerID,
		CaseID:     &caseID,
		Source:     domain.NotificationSourceWorkflow,
		Message:    fmt.Sprintf("Your case %q moved to %s", c.Title, stage),
		CreatedAt:  s.now(),
	}
	if _, err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("notification.NotifyTransition: %w", err)
	}
	return nil
}
