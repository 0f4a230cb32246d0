// Package dataloader provides per-request loaders that batch the task
// lookups of a case board into one query.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type taskSource interface {
	TasksByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) (map[uuid.UUID][]domain.CaseTask, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	TasksByCaseID *dataloader.Loader[uuid.UUID, []domain.CaseTask]
}

// NewLoaders must be called per request: loaders cache results for their
// whole lifetime.
func NewLoaders(tasks taskSource) *Loaders {
	return &Loaders{
		TasksByCaseID: dataloader.NewBatchedLoader(
			newTasksBatchFn(tasks),
			dataloader.WithWait[uuid.UUID, []domain.CaseTask](wait),
			dataloader.WithBatchCapacity[uuid.UUID, []domain.CaseTask](maxBatch),
		),
	}
}

func newTasksBatchFn(src taskSource) dataloader.BatchFunc[uuid.UUID, []domain.CaseTask] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.CaseTask] {
		grouped, err := src.TasksByCaseIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[[]domain.CaseTask], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[[]domain.CaseTask]{Error: err}
			}
			return results
		}

		results := make([]*dataloader.Result[[]domain.CaseTask], len(keys))
		for i, key := range keys {
			tasks := grouped[key]
			if tasks == nil {
				tasks = []domain.CaseTask{}
			}
			results[i] = &dataloader.Result[[]domain.CaseTask]{Data: tasks}
		}
		return results
	}
}

// LoadTasks resolves the tasks of every case in one batch, keeping order.
func (l *Loaders) LoadTasks(ctx context.Context, caseIDs []uuid.UUID) ([][]domain.CaseTask, error) {
	thunk := l.TasksByCaseID.LoadMany(ctx, caseIDs)
	out, errs := thunk()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type contextKey struct{}

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(contextKey{}).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
