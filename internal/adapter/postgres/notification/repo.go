// Package notification implements the CustomerNotification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	table  = "customer_notifications"
	entity = "customer_notification"

	defaultLimit = 100
)

var columns = []string{"id", "customer_id", "case_id", "source", "external_id", "message", "created_at"}

// Repo provides customer notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a locally generated notification.
func (r *Repo) Create(ctx context.Context, n domain.CustomerNotification) (domain.CustomerNotification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).Columns(columns...).Values(values(n)...)
	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return domain.CustomerNotification{}, postgres.MapError(err, entity, n.ID)
	}
	return n, nil
}

// UpsertExternal stores notifications fetched from the portal, skipping any
// whose (customer_id, external_id) pair is already stored. It returns the
// number of rows actually inserted.
func (r *Repo) UpsertExternal(ctx context.Context, items []domain.CustomerNotification) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).Columns(columns...)
	for _, n := range items {
		if n.ExternalID == nil {
			return 0, fmt.Errorf("%s %s: external id is required: %w", entity, n.ID, domain.ErrValidation)
		}
		b = b.Values(values(n)...)
	}
	b = b.Suffix("ON CONFLICT (customer_id, external_id) WHERE external_id IS NOT NULL DO NOTHING")

	tag, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return 0, postgres.MapError(err, entity, items[0].CustomerID)
	}
	return int(tag.RowsAffected()), nil
}

// ListByCustomer returns the newest notifications of a customer first.
func (r *Repo) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.CustomerNotification, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list notifications for customer %s: %w", customerID, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomerNotification, error) {
		var (
			n      domain.CustomerNotification
			source string
		)
		err := row.Scan(&n.ID, &n.CustomerID, &n.CaseID, &source, &n.ExternalID, &n.Message, &n.CreatedAt)
		n.Source = domain.NotificationSource(source)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications for customer %s: %w", customerID, err)
	}
	return out, nil
}

// DeleteByCase removes notifications linked to a case during a purge.
func (r *Repo) DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"case_id": caseID}))
	if err != nil {
		return 0, postgres.MapError(err, entity, caseID)
	}
	return tag.RowsAffected(), nil
}

func values(n domain.CustomerNotification) []any {
	return []any{n.ID, n.CustomerID, n.CaseID, string(n.Source), n.ExternalID, n.Message, n.CreatedAt}
}
