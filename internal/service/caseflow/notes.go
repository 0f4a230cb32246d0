package caseflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// AddNote appends a note to a case. Notes are never edited.
func (s *Service) AddNote(ctx context.Context, caseID uuid.UUID, text string) (domain.Note, error) {
	authorID, ok := ctxutil.StaffIDFromCtx(ctx)
	if !ok {
		return domain.Note{}, domain.ErrUnauthorized
	}
	if err := validateNote(text); err != nil {
		return domain.Note{}, err
	}
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return domain.Note{}, fmt.Errorf("caseflow.AddNote: %w", err)
	}

	n, err := s.notes.Create(ctx, domain.Note{
		ID:       uuid.New(),
		CaseID:   caseID,
		Date:     s.now(),
		Text:     strings.TrimSpace(text),
		AuthorID: &authorID,
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("caseflow.AddNote: %w", err)
	}
	return n, nil
}

// ListNotes returns the notes of a case, oldest first.
func (s *Service) ListNotes(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("caseflow.ListNotes: %w", err)
	}
	notes, err := s.notes.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("caseflow.ListNotes: %w", err)
	}
	return notes, nil
}
