// Package history implements the append-only case ledger using PostgreSQL.
// The table rejects UPDATE at the database level; rows are removed only by
// DeleteByCase during an administrative purge.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	table  = "case_history"
	entity = "case_history"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append writes exactly one ledger record.
func (r *Repo) Append(ctx context.Context, rec domain.HistoryRecord) (domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).
		Columns("id", "case_id", "state_from", "state_in", "date", "actor_id").
		Values(rec.ID, rec.CaseID, string(rec.StateFrom), string(rec.StateIn), rec.Date, rec.ActorID)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return domain.HistoryRecord{}, postgres.MapError(err, entity, rec.ID)
	}
	return rec, nil
}

// ListByCase returns the ledger of a case ordered by date, ties broken by
// insertion order.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Select("id", "case_id", "state_from", "state_in", "date", "actor_id").
		From(table).
		Where(squirrel.Eq{"case_id": caseID}).
		OrderBy("date ASC", "seq ASC")

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list history for case %s: %w", caseID, err)
	}
	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("list history for case %s: %w", caseID, err)
	}
	return records, nil
}

// DeleteByCase removes the whole ledger of a case and returns the number of
// records deleted. Only the administrative purge calls it.
func (r *Repo) DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(squirrel.Eq{"case_id": caseID}))
	if err != nil {
		return 0, postgres.MapError(err, entity, caseID)
	}
	return tag.RowsAffected(), nil
}

// mismatchSQL selects every case whose state differs from the stateIn of
// its chronologically last ledger record, or that has no record at all.
const mismatchSQL = `
SELECT c.id, c.state, last.state_in, last.date
FROM cases c
LEFT JOIN LATERAL (
    SELECT h.state_in, h.date
    FROM case_history h
    WHERE h.case_id = c.id
    ORDER BY h.date DESC, h.seq DESC
    LIMIT 1
) last ON true
WHERE last.state_in IS NULL OR last.state_in <> c.state
ORDER BY c.id`

// Mismatches returns cases whose current state is not backed by the ledger.
func (r *Repo) Mismatches(ctx context.Context) ([]domain.CaseMismatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, mismatchSQL)
	if err != nil {
		return nil, fmt.Errorf("ledger mismatches: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CaseMismatch, error) {
		var (
			m         domain.CaseMismatch
			caseState string
			ledger    *string
			last      *time.Time
		)
		if err := row.Scan(&m.CaseID, &caseState, &ledger, &last); err != nil {
			return domain.CaseMismatch{}, err
		}
		m.CaseState = domain.CaseState(caseState)
		if ledger != nil {
			s := domain.CaseState(*ledger)
			m.LedgerState = &s
		}
		m.LastRecord = last
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger mismatches: %w", err)
	}
	return out, nil
}

func scanRecord(row pgx.CollectableRow) (domain.HistoryRecord, error) {
	var (
		rec      domain.HistoryRecord
		from, in string
	)
	if err := row.Scan(&rec.ID, &rec.CaseID, &from, &in, &rec.Date, &rec.ActorID); err != nil {
		return domain.HistoryRecord{}, err
	}
	rec.StateFrom = domain.CaseState(from)
	rec.StateIn = domain.CaseState(in)
	return rec, nil
}
