// Package note implements the append-only Note repository using PostgreSQL.
package note

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

const table = "case_notes"

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a note.
func (r *Repo) Create(ctx context.Context, n domain.Note) (domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).
		Columns("id", "case_id", "date", "text", "author_id").
		Values(n.ID, n.CaseID, n.Date, n.Text, n.AuthorID)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return domain.Note{}, postgres.MapError(err, "case_note", n.ID)
	}
	return n, nil
}

// ListByCase returns the notes of a case, oldest first.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select("id", "case_id", "date", "text", "author_id").
		From(table).
		Where(squirrel.Eq{"case_id": caseID}).
		OrderBy("date ASC", "id ASC")

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list notes for case %s: %w", caseID, err)
	}
	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		var n domain.Note
		err := row.Scan(&n.ID, &n.CaseID, &n.Date, &n.Text, &n.AuthorID)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("list notes for case %s: %w", caseID, err)
	}
	return notes, nil
}

// DeleteByCase removes all notes of a case during a purge.
func (r *Repo) DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"case_id": caseID}))
	if err != nil {
		return 0, postgres.MapError(err, "case_note", caseID)
	}
	return tag.RowsAffected(), nil
}
