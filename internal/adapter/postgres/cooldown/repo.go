// Package cooldown implements durable notification cooldowns using PostgreSQL.
package cooldown

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	table  = "notification_cooldowns"
	entity = "notification_cooldown"
)

// Repo stores one cooldown row per endpoint key.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cooldown repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored cooldown for key, expired or not.
func (r *Repo) Get(ctx context.Context, key string) (domain.Cooldown, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select("endpoint_key", "until", "reason").From(table).
		Where(squirrel.Eq{"endpoint_key": key})

	var c domain.Cooldown
	if err := postgres.QueryRow(ctx, q, b).Scan(&c.EndpointKey, &c.Until, &c.Reason); err != nil {
		return domain.Cooldown{}, postgres.MapError(err, entity, key)
	}
	return c, nil
}

// Put creates or replaces the cooldown for c.EndpointKey.
func (r *Repo) Put(ctx context.Context, c domain.Cooldown) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).
		Columns("endpoint_key", "until", "reason", "updated_at").
		Values(c.EndpointKey, c.Until, c.Reason, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (endpoint_key) DO UPDATE SET until = EXCLUDED.until, reason = EXCLUDED.reason, updated_at = EXCLUDED.updated_at")

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, entity, c.EndpointKey)
	}
	return nil
}

// Delete removes the cooldown for key. Deleting a missing key is not an error.
func (r *Repo) Delete(ctx context.Context, key string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"endpoint_key": key})); err != nil {
		return postgres.MapError(err, entity, key)
	}
	return nil
}

// List returns every stored cooldown ordered by key.
func (r *Repo) List(ctx context.Context) ([]domain.Cooldown, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select("endpoint_key", "until", "reason").From(table).OrderBy("endpoint_key")

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list cooldowns: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Cooldown, error) {
		var c domain.Cooldown
		err := row.Scan(&c.EndpointKey, &c.Until, &c.Reason)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list cooldowns: %w", err)
	}
	return out, nil
}
