package caseflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// CaseView is a case plus its values derived at read time.
type CaseView struct {
	Case       domain.Case
	Stage      domain.CaseStage
	Evaluation domain.Evaluation
	Deadline   domain.DeadlineStatus
	Tasks      []domain.CaseTask
}

// View derives the read-time projection of c at now.
func (s *Service) View(c domain.Case, tasks []domain.CaseTask, now time.Time) CaseView {
	return CaseView{
		Case:       c,
		Stage:      s.scheme.ToStage(c.State),
		Evaluation: domain.Evaluate(c, tasks, s.scheme, now),
		Deadline:   domain.ClassifyDeadline(c.Deadline, now, s.cfg.SoonWindow),
		Tasks:      tasks,
	}
}

// Now returns the service clock reading.
func (s *Service) Now() time.Time { return s.now() }

// Get returns a case with its tasks and derived view.
func (s *Service) Get(ctx context.Context, caseID uuid.UUID) (CaseView, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return CaseView{}, fmt.Errorf("caseflow.Get: %w", err)
	}
	tasks, err := s.tasks.ListByCase(ctx, caseID)
	if err != nil {
		return CaseView{}, fmt.Errorf("caseflow.Get tasks: %w", err)
	}
	return s.View(c, tasks, s.now()), nil
}

// List returns the cases matching f.
func (s *Service) List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error) {
	if f.State != nil && !f.State.IsValid() {
		return nil, domain.NewValidationError("state", "unknown state")
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return nil, domain.NewValidationError("priority", "unknown priority")
	}
	cases, err := s.cases.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("caseflow.List: %w", err)
	}
	return cases, nil
}

// TasksByCaseIDs loads the tasks of several cases in one query, grouped by
// case. Every requested ID is present in the result.
func (s *Service) TasksByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) (map[uuid.UUID][]domain.CaseTask, error) {
	out := make(map[uuid.UUID][]domain.CaseTask, len(caseIDs))
	for _, id := range caseIDs {
		out[id] = nil
	}
	if len(caseIDs) == 0 {
		return out, nil
	}
	tasks, err := s.tasks.ListByCaseIDs(ctx, caseIDs)
	if err != nil {
		return nil, fmt.Errorf("caseflow.TasksByCaseIDs: %w", err)
	}
	for _, t := range tasks {
		out[t.CaseID] = append(out[t.CaseID], t)
	}
	return out, nil
}

// Board returns views for every case matching f, loading tasks in one batch.
func (s *Service) Board(ctx context.Context, f domain.CaseFilter) ([]CaseView, error) {
	cases, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	tasks, err := s.TasksByCaseIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]CaseView, len(cases))
	for i, c := range cases {
		views[i] = s.View(c, tasks[c.ID], now)
	}
	return views, nil
}
