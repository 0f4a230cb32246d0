package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// Login authenticates a staff member with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := s.staff.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get staff: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(input.Password)); err != nil {
		s.log.WarnContext(ctx, "login with wrong password", slog.String("staff_id", member.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	pair, err := s.tokens.IssueTokens(member.Identity())
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "staff logged in", slog.String("staff_id", member.ID.String()))
	return &AuthResult{Tokens: pair, Staff: member}, nil
}
