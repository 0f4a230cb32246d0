package caseflow

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// Transition moves a case to target. Validation, the ledger append and the
// state update run as one transaction holding the case row lock; on any
// storage failure nothing is committed and a *domain.LedgerWriteError is
// returned. Mail and customer notifications follow the commit and never
// fail the transition.
func (s *Service) Transition(ctx context.Context, caseID uuid.UUID, target domain.CaseState) (domain.Case, error) {
	actor, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Case{}, domain.ErrUnauthorized
	}
	if !target.IsValid() {
		return domain.Case{}, domain.NewValidationError("state", "unknown state")
	}

	var (
		prev    domain.CaseState
		updated domain.Case
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.cases.GetForUpdate(ctx, caseID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return err
			}
			return &domain.LedgerWriteError{CaseID: caseID, Op: "lock case", Err: err}
		}

		at := s.now()
		next, err := domain.ApplyTransition(c, target, at)
		if err != nil {
			return err
		}

		actorID := actor.ID
		if _, err := s.history.Append(ctx, domain.HistoryRecord{
			ID:        uuid.New(),
			CaseID:    c.ID,
			StateFrom: c.State,
			StateIn:   target,
			Date:      at,
			ActorID:   &actorID,
		}); err != nil {
			return &domain.LedgerWriteError{CaseID: caseID, Op: "append history", Err: err}
		}

		if err := s.cases.UpdateState(ctx, c.ID, c.State, target, at); err != nil {
			return &domain.LedgerWriteError{CaseID: caseID, Op: "update state", Err: err}
		}

		prev, updated = c.State, next
		return nil
	})
	if err != nil {
		var ledgerErr *domain.LedgerWriteError
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrIllegalTransition), errors.As(err, &ledgerErr):
			return domain.Case{}, err
		}
		return domain.Case{}, &domain.LedgerWriteError{CaseID: caseID, Op: "commit", Err: err}
	}

	s.log.InfoContext(ctx, "case transitioned",
		slog.String("case_id", caseID.String()),
		slog.String("from", prev.String()),
		slog.String("to", target.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	s.afterTransition(ctx, updated)
	return updated, nil
}

// afterTransition runs the best-effort side effects of a committed
// transition in the background.
func (s *Service) afterTransition(ctx context.Context, c domain.Case) {
	ctx = context.WithoutCancel(ctx)
	stage := s.scheme.ToStage(c.State)

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()

		if s.notifier != nil {
			if err := s.notifier.NotifyTransition(ctx, c, stage); err != nil {
				s.log.WarnContext(ctx, "transition notification failed",
					slog.String("case_id", c.ID.String()),
					slog.String("error", err.Error()))
			}
		}

		if s.mail == nil || !c.State.IsWaiting() || c.ContactEmail == nil {
			return
		}
		if err := s.mail.Send(ctx, transitionMail(c, stage)); err != nil {
			s.log.WarnContext(ctx, "transition mail not delivered",
				slog.String("case_id", c.ID.String()),
				slog.String("error", err.Error()))
		}
	}()
}

func transitionMail(c domain.Case, stage domain.CaseStage) domain.MailMessage {
	var text string
	switch c.State {
	case domain.CaseStateWaitingAuthority:
		text = fmt.Sprintf("Your case %q has been filed with the authorities. We will let you know as soon as they respond.", c.Title)
	default:
		text = fmt.Sprintf("Your case %q is waiting for your response. Please review the documents we sent you.", c.Title)
	}
	return domain.MailMessage{
		To:      *c.ContactEmail,
		Subject: fmt.Sprintf("Case update: %s (%s)", c.Title, stage),
		Text:    text,
		HTML:    "<p>" + html.EscapeString(text) + "</p>",
	}
}
