package caseflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// Create opens a case and writes its creation record to the ledger in the
// same transaction, so the ledger backs the state from the first moment.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Case, error) {
	actor, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Case{}, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(s.scheme); err != nil {
		return domain.Case{}, err
	}

	now := s.now()
	state := input.initialState(s.scheme)

	slaDue := input.SLADue
	if slaDue == nil {
		if window := s.cfg.SLAFor(input.Priority); window > 0 {
			due := now.Add(window)
			slaDue = &due
		}
	}

	c := domain.Case{
		ID:              uuid.New(),
		CustomerID:      input.CustomerID,
		Title:           input.Title,
		Category:        input.Category,
		Subcategory:     input.Subcategory,
		State:           state,
		DocumentState:   input.DocumentState,
		Priority:        input.Priority,
		Deadline:        input.Deadline,
		SLADue:          slaDue,
		AssignedTo:      input.AssignedTo,
		ContactEmail:    input.ContactEmail,
		LastStateChange: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var created domain.Case
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.cases.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("create case: %w", err)
		}

		actorID := actor.ID
		if _, err := s.history.Append(ctx, domain.HistoryRecord{
			ID:        uuid.New(),
			CaseID:    created.ID,
			StateFrom: state,
			StateIn:   state,
			Date:      now,
			ActorID:   &actorID,
		}); err != nil {
			return fmt.Errorf("append creation record: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Case{}, fmt.Errorf("caseflow.Create: %w", err)
	}

	s.log.InfoContext(ctx, "case created",
		slog.String("case_id", created.ID.String()),
		slog.String("state", state.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return created, nil
}
