package caseflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// Purge deletes a case together with its ledger, tasks, notes and
// notifications in one transaction. Admin only.
func (s *Service) Purge(ctx context.Context, caseID uuid.UUID) error {
	actor, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.purge(ctx, caseID, actor.ID.String())
}

// PurgeAsOperator deletes a case on behalf of a local operator (casectl),
// where no staff identity exists.
func (s *Service) PurgeAsOperator(ctx context.Context, caseID uuid.UUID) error {
	return s.purge(ctx, caseID, "operator")
}

func (s *Service) purge(ctx context.Context, caseID uuid.UUID, by string) error {
	var history, tasks, notes, notifications int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.cases.GetForUpdate(ctx, caseID); err != nil {
			return err
		}

		var err error
		if history, err = s.history.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		if tasks, err = s.tasks.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		if notes, err = s.notes.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
		if notifications, err = s.notifications.DeleteByCase(ctx, caseID); err != nil {
			return fmt.Errorf("delete notifications: %w", err)
		}
		if err := s.cases.Delete(ctx, caseID); err != nil {
			return fmt.Errorf("delete case: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("caseflow.Purge: %w", err)
	}

	s.log.WarnContext(ctx, "case purged",
		slog.String("case_id", caseID.String()),
		slog.String("by", by),
		slog.Int64("history", history),
		slog.Int64("tasks", tasks),
		slog.Int64("notes", notes),
		slog.Int64("notifications", notifications),
	)
	return nil
}
