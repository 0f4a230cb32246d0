// Package scheduler runs repeating background jobs.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Job is a named unit of periodic work. A non-positive Interval disables it.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner ticks every job on its own goroutine. A tick that arrives while the
// previous run of the same job is still in flight is skipped, never queued.
type Runner struct {
	log  *slog.Logger
	jobs []Job
}

// NewRunner creates a runner for jobs.
func NewRunner(logger *slog.Logger, jobs ...Job) *Runner {
	return &Runner{log: logger.With("component", "scheduler"), jobs: jobs}
}

// Run blocks until ctx is cancelled and every in-flight run has returned.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range r.jobs {
		if job.Interval <= 0 {
			r.log.InfoContext(ctx, "job disabled", slog.String("job", job.Name))
			continue
		}
		g.Go(func() error {
			r.loop(ctx, job)
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) loop(ctx context.Context, job Job) {
	log := r.log.With("job", job.Name)
	log.InfoContext(ctx, "job started", slog.Duration("interval", job.Interval))

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	var (
		running atomic.Bool
		wg      sync.WaitGroup
	)
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "job stopped")
			return
		case <-ticker.C:
			if !running.CompareAndSwap(false, true) {
				log.DebugContext(ctx, "tick skipped, previous run in flight")
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer running.Store(false)

				start := time.Now()
				if err := job.Run(ctx); err != nil && ctx.Err() == nil {
					log.ErrorContext(ctx, "job failed", slog.String("error", err.Error()))
					return
				}
				log.DebugContext(ctx, "job finished", slog.Duration("duration", time.Since(start)))
			}()
		}
	}
}
