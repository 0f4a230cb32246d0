package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/auth"
	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// staffRepo defines the staff repository interface needed by auth service.
type staffRepo interface {
	Create(ctx context.Context, s domain.Staff) (domain.Staff, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Staff, error)
	GetByEmail(ctx context.Context, email string) (domain.Staff, error)
}

// tokenIssuer defines the session token operations needed by auth service.
type tokenIssuer interface {
	IssueTokens(id domain.Identity) (auth.TokenPair, error)
	VerifyRefresh(token string) (auth.RefreshClaims, error)
}

// Service implements staff authentication.
type Service struct {
	log    *slog.Logger
	staff  staffRepo
	tokens tokenIssuer
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, staff staffRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		staff:  staff,
		tokens: tokens,
		cfg:    cfg,
	}
}

// AuthResult is returned by Login and Refresh.
type AuthResult struct {
	Tokens auth.TokenPair
	Staff  domain.Staff
}
