package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// Register creates a staff account. Returns ErrAlreadyExists if the email is
// already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.Staff, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Role == "" {
		input.Role = domain.StaffRoleStaff
	}

	if err := input.Validate(); err != nil {
		return domain.Staff{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return domain.Staff{}, fmt.Errorf("auth.Register hash password: %w", err)
	}

	created, err := s.staff.Create(ctx, domain.Staff{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Staff{}, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return domain.Staff{}, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "staff registered",
		slog.String("staff_id", created.ID.String()),
		slog.String("role", created.Role.String()))
	return created, nil
}
