package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a new token pair.
// An expired refresh token returns ErrTokenExpired, any other bad token
// ErrInvalidToken; either way the client must log in again. A token whose
// subject no longer exists returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.tokens.VerifyRefresh(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	member, err := s.staff.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted staff",
				slog.String("staff_id", claims.Subject.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get staff: %w", err)
	}

	pair, err := s.tokens.IssueTokens(member.Identity())
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return &AuthResult{Tokens: pair, Staff: member}, nil
}
