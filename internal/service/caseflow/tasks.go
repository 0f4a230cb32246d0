package caseflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// AddTask attaches a to-do item to a case.
func (s *Service) AddTask(ctx context.Context, caseID uuid.UUID, input TaskInput) (domain.CaseTask, error) {
	if err := input.Validate(); err != nil {
		return domain.CaseTask{}, err
	}
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return domain.CaseTask{}, fmt.Errorf("caseflow.AddTask: %w", err)
	}

	t, err := s.tasks.Create(ctx, domain.CaseTask{
		ID:        uuid.New(),
		CaseID:    caseID,
		Title:     strings.TrimSpace(input.Title),
		CreatedAt: s.now(),
		DueDate:   input.DueDate,
	})
	if err != nil {
		return domain.CaseTask{}, fmt.Errorf("caseflow.AddTask: %w", err)
	}
	return t, nil
}

// SetTaskDone sets the done flag of a task. Setting the current value again
// is not an error.
func (s *Service) SetTaskDone(ctx context.Context, caseID, taskID uuid.UUID, done bool) (domain.CaseTask, error) {
	t, err := s.tasks.SetDone(ctx, caseID, taskID, done)
	if err != nil {
		return domain.CaseTask{}, fmt.Errorf("caseflow.SetTaskDone: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task from a case.
func (s *Service) DeleteTask(ctx context.Context, caseID, taskID uuid.UUID) error {
	if err := s.tasks.Delete(ctx, caseID, taskID); err != nil {
		return fmt.Errorf("caseflow.DeleteTask: %w", err)
	}
	return nil
}

// ListTasks returns the tasks of a case.
func (s *Service) ListTasks(ctx context.Context, caseID uuid.UUID) ([]domain.CaseTask, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("caseflow.ListTasks: %w", err)
	}
	tasks, err := s.tasks.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("caseflow.ListTasks: %w", err)
	}
	return tasks, nil
}
