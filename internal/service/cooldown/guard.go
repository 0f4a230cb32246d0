// Package cooldown suppresses calls to downstream endpoints that recently
// failed.
//
// Transient failures (network errors, 5xx) start a short window held only in
// memory. A "not found" failure starts a long window that is also written to
// the durable store, so it survives a restart while the short tier does not.
// Durable windows expire on their own; Clear resets a key early.
package cooldown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/telemetry"
)

// Reasons recorded with a cooldown.
const (
	ReasonTransient = "transient"
	ReasonNotFound  = "not_found"
)

// store persists long-tier cooldowns.
type store interface {
	Get(ctx context.Context, key string) (domain.Cooldown, error)
	Put(ctx context.Context, c domain.Cooldown) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.Cooldown, error)
}

type entry struct {
	until     time.Time
	permanent bool
}

// Guard decides whether a call to an endpoint should be skipped.
// It is safe for concurrent use.
type Guard struct {
	log   *slog.Logger
	store store
	short time.Duration
	long  time.Duration

	mu      sync.Mutex
	entries map[string]entry

	skips       metric.Int64Counter
	failures    metric.Int64Counter
	storeErrors metric.Int64Counter
}

// NewGuard creates a guard. A nil store keeps both tiers in memory only.
func NewGuard(logger *slog.Logger, st store, cfg config.CooldownConfig) *Guard {
	m := telemetry.Meter("cooldown")
	skips, _ := m.Int64Counter("casedesk.cooldown.skips",
		metric.WithDescription("Calls suppressed by an active cooldown"))
	failures, _ := m.Int64Counter("casedesk.cooldown.failures",
		metric.WithDescription("Failures that started a cooldown"))
	storeErrors, _ := m.Int64Counter("casedesk.cooldown.store_errors",
		metric.WithDescription("Durable cooldown store failures"))

	return &Guard{
		log:         logger.With("service", "cooldown"),
		store:       st,
		short:       cfg.Short,
		long:        cfg.Long,
		entries:     make(map[string]entry),
		skips:       skips,
		failures:    failures,
		storeErrors: storeErrors,
	}
}

// ShouldSkip reports whether calls to key are suppressed at now.
// Store failures are logged and treated as "no durable cooldown".
func (g *Guard) ShouldSkip(ctx context.Context, key string, now time.Time) bool {
	g.mu.Lock()
	e, ok := g.entries[key]
	if ok && !now.Before(e.until) {
		delete(g.entries, key)
		ok = false
	}
	g.mu.Unlock()

	if ok {
		g.skips.Add(ctx, 1, metric.WithAttributes(tierAttr(e.permanent)))
		return true
	}

	if g.store == nil {
		return false
	}

	c, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			g.storeFailure(ctx, "get", key, err)
		}
		return false
	}

	if !c.Active(now) {
		if err := g.store.Delete(ctx, key); err != nil {
			g.storeFailure(ctx, "delete expired", key, err)
		}
		return false
	}

	g.mu.Lock()
	g.entries[key] = entry{until: c.Until, permanent: true}
	g.mu.Unlock()

	g.skips.Add(ctx, 1, metric.WithAttributes(tierAttr(true)))
	return true
}

// RecordFailure starts a cooldown for key. permanent selects the long tier,
// which is also persisted. An existing longer window is never shortened.
func (g *Guard) RecordFailure(ctx context.Context, key string, permanent bool, now time.Time) {
	window, reason := g.short, ReasonTransient
	if permanent {
		window, reason = g.long, ReasonNotFound
	}
	until := now.Add(window)

	g.mu.Lock()
	if cur, ok := g.entries[key]; ok && cur.until.After(until) {
		until = cur.until
		permanent = permanent || cur.permanent
	}
	g.entries[key] = entry{until: until, permanent: permanent}
	g.mu.Unlock()

	g.failures.Add(ctx, 1, metric.WithAttributes(tierAttr(reason == ReasonNotFound)))
	g.log.InfoContext(ctx, "cooldown started",
		slog.String("endpoint", key),
		slog.String("reason", reason),
		slog.Time("until", until),
	)

	if reason != ReasonNotFound || g.store == nil {
		return
	}
	if err := g.store.Put(ctx, domain.Cooldown{EndpointKey: key, Until: until, Reason: reason}); err != nil {
		g.storeFailure(ctx, "put", key, err)
	}
}

// RecordSuccess drops any cooldown for key.
func (g *Guard) RecordSuccess(ctx context.Context, key string) {
	g.mu.Lock()
	e, ok := g.entries[key]
	delete(g.entries, key)
	g.mu.Unlock()

	if !ok || !e.permanent || g.store == nil {
		return
	}
	if err := g.store.Delete(ctx, key); err != nil {
		g.storeFailure(ctx, "delete", key, err)
	}
}

// Clear is the operator reset: it removes key from both tiers and reports
// store failures to the caller.
func (g *Guard) Clear(ctx context.Context, key string) error {
	g.mu.Lock()
	delete(g.entries, key)
	g.mu.Unlock()

	if g.store == nil {
		return nil
	}
	if err := g.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("cooldown.Clear: %w", err)
	}
	g.log.InfoContext(ctx, "cooldown cleared", slog.String("endpoint", key))
	return nil
}

// List returns the cooldowns active at now from both tiers, ordered by key.
func (g *Guard) List(ctx context.Context, now time.Time) ([]domain.Cooldown, error) {
	byKey := make(map[string]domain.Cooldown)

	if g.store != nil {
		stored, err := g.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cooldown.List: %w", err)
		}
		for _, c := range stored {
			if c.Active(now) {
				byKey[c.EndpointKey] = c
			}
		}
	}

	g.mu.Lock()
	for key, e := range g.entries {
		if !now.Before(e.until) {
			continue
		}
		if _, ok := byKey[key]; ok {
			continue
		}
		reason := ReasonTransient
		if e.permanent {
			reason = ReasonNotFound
		}
		byKey[key] = domain.Cooldown{EndpointKey: key, Until: e.until, Reason: reason}
	}
	g.mu.Unlock()

	out := make([]domain.Cooldown, 0, len(byKey))
	for _, c := range byKey {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndpointKey < out[j].EndpointKey })
	return out, nil
}

func (g *Guard) storeFailure(ctx context.Context, op, key string, err error) {
	g.storeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	g.log.WarnContext(ctx, "cooldown store failed, using memory only",
		slog.String("op", op),
		slog.String("endpoint", key),
		slog.String("error", err.Error()),
	)
}

func tierAttr(permanent bool) attribute.KeyValue {
	if permanent {
		return attribute.String("tier", "long")
	}
	return attribute.String("tier", "short")
}
