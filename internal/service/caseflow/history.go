package caseflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// History returns the transitions of a case, oldest first. The creation
// record stays in the ledger for verification but is not a transition, so
// a case moved N times has exactly N entries here.
func (s *Service) History(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryRecord, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("caseflow.History: %w", err)
	}
	records, err := s.history.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("caseflow.History: %w", err)
	}
	transitions := make([]domain.HistoryRecord, 0, len(records))
	for _, r := range records {
		if r.IsCreation() {
			continue
		}
		transitions = append(transitions, r)
	}
	return transitions, nil
}

// VerifyLedger lists cases whose state is not backed by their last ledger
// record.
func (s *Service) VerifyLedger(ctx context.Context) ([]domain.CaseMismatch, error) {
	mismatches, err := s.history.Mismatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("caseflow.VerifyLedger: %w", err)
	}
	if len(mismatches) > 0 {
		s.log.ErrorContext(ctx, "ledger mismatches found", slog.Int("count", len(mismatches)))
	}
	return mismatches, nil
}
