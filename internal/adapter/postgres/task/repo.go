// Package task implements the CaseTask repository using PostgreSQL.
package task

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
	table  = "case_tasks"
	entity = "case_task"
)

var columns = []string{"id", "case_id", "title", "done", "created_at", "due_date"}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a task.
func (r *Repo) Create(ctx context.Context, t domain.CaseTask) (domain.CaseTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(t.ID, t.CaseID, t.Title, t.Done, t.CreatedAt, t.DueDate)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return domain.CaseTask{}, postgres.MapError(err, entity, t.ID)
	}
	return t, nil
}

// SetDone sets the done flag of a task that belongs to caseID. Setting the
// flag to its current value is a successful no-op.
func (r *Repo) SetDone(ctx context.Context, caseID, taskID uuid.UUID, done bool) (domain.CaseTask, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Update(table).
		Set("done", done).
		Where(squirrel.Eq{"id": taskID, "case_id": caseID}).
		Suffix("RETURNING id, case_id, title, done, created_at, due_date")

	row := postgres.QueryRow(ctx, q, b)
	var t domain.CaseTask
	if err := row.Scan(&t.ID, &t.CaseID, &t.Title, &t.Done, &t.CreatedAt, &t.DueDate); err != nil {
		return domain.CaseTask{}, postgres.MapError(err, entity, taskID)
	}
	return t, nil
}

// Delete removes a task that belongs to caseID.
func (r *Repo) Delete(ctx context.Context, caseID, taskID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"id": taskID, "case_id": caseID}))
	if err != nil {
		return postgres.MapError(err, entity, taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, taskID, domain.ErrNotFound)
	}
	return nil
}

// ListByCase returns the tasks of a case, oldest first.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.CaseTask, error) {
	return r.ListByCaseIDs(ctx, []uuid.UUID{caseID})
}

// ListByCaseIDs returns the tasks of several cases in one query. It backs
// the per-request tasks loader.
func (r *Repo) ListByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) ([]domain.CaseTask, error) {
	if len(caseIDs) == 0 {
		return []domain.CaseTask{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"case_id": caseIDs}).
		OrderBy("case_id", "created_at ASC", "id ASC")

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CaseTask, error) {
		var t domain.CaseTask
		err := row.Scan(&t.ID, &t.CaseID, &t.Title, &t.Done, &t.CreatedAt, &t.DueDate)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// DeleteByCase removes all tasks of a case.
func (r *Repo) DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"case_id": caseID}))
	if err != nil {
		return 0, postgres.MapError(err, entity, caseID)
	}
	return tag.RowsAffected(), nil
}
