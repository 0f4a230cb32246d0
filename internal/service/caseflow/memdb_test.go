package caseflow

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// memDB backs the case and history mocks with a map that the tx mock
// snapshots on begin and restores on error, mimicking a rollback.
type memDB struct {
	mu      sync.Mutex
	cases   map[uuid.UUID]domain.Case
	history []domain.HistoryRecord

	failAppend error
	failUpdate error
	failCommit error
}

func newMemDB() *memDB {
	return &memDB{cases: make(map[uuid.UUID]domain.Case)}
}

func (db *memDB) put(c domain.Case) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.cases[c.ID] = c
}

func (db *memDB) get(id uuid.UUID) domain.Case {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.cases[id]
}

func (db *memDB) records(caseID uuid.UUID) []domain.HistoryRecord {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []domain.HistoryRecord
	for _, r := range db.history {
		if r.CaseID == caseID {
			out = append(out, r)
		}
	}
	return out
}

func (db *memDB) txManager() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			db.mu.Lock()
			cases := make(map[uuid.UUID]domain.Case, len(db.cases))
			for k, v := range db.cases {
				cases[k] = v
			}
			history := slices.Clone(db.history)
			db.mu.Unlock()

			err := fn(ctx)
			if err == nil && db.failCommit != nil {
				err = db.failCommit
			}
			if err != nil {
				db.mu.Lock()
				db.cases, db.history = cases, history
				db.mu.Unlock()
			}
			return err
		},
	}
}

func (db *memDB) caseRepo() *caseRepoMock {
	lookup := func(_ context.Context, id uuid.UUID) (domain.Case, error) {
		db.mu.Lock()
		defer db.mu.Unlock()
		c, ok := db.cases[id]
		if !ok {
			return domain.Case{}, fmt.Errorf("case %s: %w", id, domain.ErrNotFound)
		}
		return c, nil
	}
	return &caseRepoMock{
		CreateFunc: func(_ context.Context, c domain.Case) (domain.Case, error) {
			db.put(c)
			return c, nil
		},
		GetByIDFunc:      lookup,
		GetForUpdateFunc: lookup,
		UpdateStateFunc: func(_ context.Context, id uuid.UUID, from, to domain.CaseState, at time.Time) error {
			if db.failUpdate != nil {
				return db.failUpdate
			}
			db.mu.Lock()
			defer db.mu.Unlock()
			c, ok := db.cases[id]
			if !ok || c.State != from {
				return domain.ErrConflict
			}
			c.State, c.LastStateChange, c.UpdatedAt = to, at, at
			db.cases[id] = c
			return nil
		},
		DeleteFunc: func(_ context.Context, id uuid.UUID) error {
			db.mu.Lock()
			defer db.mu.Unlock()
			delete(db.cases, id)
			return nil
		},
		ListFunc: func(context.Context, domain.CaseFilter) ([]domain.Case, error) {
			db.mu.Lock()
			defer db.mu.Unlock()
			out := make([]domain.Case, 0, len(db.cases))
			for _, c := range db.cases {
				out = append(out, c)
			}
			slices.SortFunc(out, func(a, b domain.Case) int { return a.CreatedAt.Compare(b.CreatedAt) })
			return out, nil
		},
	}
}

func (db *memDB) historyRepo() *historyRepoMock {
	return &historyRepoMock{
		AppendFunc: func(_ context.Context, rec domain.HistoryRecord) (domain.HistoryRecord, error) {
			if db.failAppend != nil {
				return domain.HistoryRecord{}, db.failAppend
			}
			db.mu.Lock()
			defer db.mu.Unlock()
			db.history = append(db.history, rec)
			return rec, nil
		},
		ListByCaseFunc: func(_ context.Context, caseID uuid.UUID) ([]domain.HistoryRecord, error) {
			return db.records(caseID), nil
		},
		DeleteByCaseFunc: func(_ context.Context, caseID uuid.UUID) (int64, error) {
			db.mu.Lock()
			defer db.mu.Unlock()
			before := len(db.history)
			db.history = slices.DeleteFunc(db.history, func(r domain.HistoryRecord) bool { return r.CaseID == caseID })
			return int64(before - len(db.history)), nil
		},
		MismatchesFunc: func(context.Context) ([]domain.CaseMismatch, error) {
			db.mu.Lock()
			defer db.mu.Unlock()
			var out []domain.CaseMismatch
			for _, c := range db.cases {
				var last *domain.HistoryRecord
				for i := range db.history {
					if db.history[i].CaseID == c.ID {
						last = &db.history[i]
					}
				}
				if last == nil {
					out = append(out, domain.CaseMismatch{CaseID: c.ID, CaseState: c.State})
					continue
				}
				if last.StateIn != c.State {
					ls := last.StateIn
					out = append(out, domain.CaseMismatch{CaseID: c.ID, CaseState: c.State, LedgerState: &ls, LastRecord: &last.Date})
				}
			}
			return out, nil
		},
	}
}
