// Package caserepo implements the Case repository using PostgreSQL.
package caserepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	table  = "cases"
	entity = "case"
)

var columns = []string{
	"id", "customer_id", "title", "category", "subcategory", "state", "document_state",
	"priority", "deadline", "sla_due", "assigned_to", "contact_email",
	"last_state_change", "created_at", "updated_at",
}

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new case and returns it as stored.
func (r *Repo) Create(ctx context.Context, c domain.Case) (domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(
			c.ID, c.CustomerID, c.Title, c.Category, c.Subcategory, string(c.State), string(c.DocumentState),
			string(c.Priority), c.Deadline, c.SLADue, c.AssignedTo, c.ContactEmail,
			c.LastStateChange, c.CreatedAt, c.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanCase(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Case{}, postgres.MapError(err, entity, c.ID)
	}
	return created, nil
}

// UpdateState moves a case from one state to another. The update only
// applies while the stored state still equals from; otherwise the case
// changed concurrently and ErrConflict is returned.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, from, to domain.CaseState, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Update(table).
		Set("state", string(to)).
		Set("last_state_change", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "state": string(from)})

	tag, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: state is no longer %s: %w", entity, id, from, domain.ErrConflict)
	}
	return nil
}

// Delete removes a case row. Dependent rows must be deleted first.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a case by its identifier.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Case, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a case and locks its row until the surrounding
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Case, error) {
	if !postgres.InTx(ctx) {
		return domain.Case{}, fmt.Errorf("%s %s: GetForUpdate requires a transaction", entity, id)
	}
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	c, err := scanCase(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return domain.Case{}, postgres.MapError(err, entity, id)
	}
	return c, nil
}

// List returns cases matching the filter, most urgent deadline first.
func (r *Repo) List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	f = normalize(f)

	b := postgres.Builder.Select(columns...).From(table)
	if f.State != nil {
		b = b.Where(squirrel.Eq{"state": string(*f.State)})
	} else if !f.IncludeClosed {
		b = b.Where(squirrel.NotEq{"state": string(domain.CaseStateClosed)})
	}
	if f.Priority != nil {
		b = b.Where(squirrel.Eq{"priority": string(*f.Priority)})
	}
	if f.CustomerID != nil {
		b = b.Where(squirrel.Eq{"customer_id": *f.CustomerID})
	}
	if f.AssignedTo != nil {
		b = b.Where(squirrel.Eq{"assigned_to": *f.AssignedTo})
	}
	b = b.OrderBy("deadline ASC NULLS LAST", "created_at ASC", "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	cases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Case, error) {
		return scanCase(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

// ListOpen returns every case that is not closed. It is used by background
// jobs and is not paginated.
func (r *Repo) ListOpen(ctx context.Context) ([]domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.NotEq{"state": string(domain.CaseStateClosed)}).
		OrderBy("created_at ASC")

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list open cases: %w", err)
	}
	cases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Case, error) {
		return scanCase(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list open cases: %w", err)
	}
	return cases, nil
}

// ListOpenCustomerIDs returns the distinct customers that own at least one open case.
func (r *Repo) ListOpenCustomerIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select("DISTINCT customer_id").From(table).
		Where(squirrel.NotEq{"state": string(domain.CaseStateClosed)}).
		OrderBy("customer_id")

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list open customers: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list open customers: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanCase(row pgx.Row) (domain.Case, error) {
	var (
		c                              domain.Case
		state, documentState, priority string
	)
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.Title, &c.Category, &c.Subcategory, &state, &documentState,
		&priority, &c.Deadline, &c.SLADue, &c.AssignedTo, &c.ContactEmail,
		&c.LastStateChange, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Case{}, err
	}
	c.State = domain.CaseState(state)
	c.DocumentState = domain.DocumentState(documentState)
	c.Priority = domain.Priority(priority)
	return c, nil
}
