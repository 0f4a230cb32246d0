// Package staff implements the Staff repository using PostgreSQL.
package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	table  = "staff"
	entity = "staff"
)

var columns = []string{"id", "email", "name", "role", "password_hash", "created_at"}

// Repo provides staff persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staff repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a staff member. Emails are unique case-insensitively.
func (r *Repo) Create(ctx context.Context, s domain.Staff) (domain.Staff, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Insert(table).Columns(columns...).
		Values(s.ID, s.Email, s.Name, string(s.Role), s.PasswordHash, s.CreatedAt)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return domain.Staff{}, postgres.MapError(err, entity, s.Email)
	}
	return s, nil
}

// GetByID returns a staff member by identifier.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Staff, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	s, err := scanStaff(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return domain.Staff{}, postgres.MapError(err, entity, id)
	}
	return s, nil
}

// GetByEmail returns a staff member by e-mail, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.Staff, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Expr("lower(email) = ?", strings.ToLower(email)))
	s, err := scanStaff(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), b))
	if err != nil {
		return domain.Staff{}, postgres.MapError(err, entity, email)
	}
	return s, nil
}

// List returns all staff ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Staff, error) {
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Select(columns...).From(table).OrderBy("name", "id"))
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Staff, error) {
		return scanStaff(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return out, nil
}

func scanStaff(row pgx.Row) (domain.Staff, error) {
	var (
		s    domain.Staff
		role string
	)
	if err := row.Scan(&s.ID, &s.Email, &s.Name, &role, &s.PasswordHash, &s.CreatedAt); err != nil {
		return domain.Staff{}, err
	}
	s.Role = domain.StaffRole(role)
	return s, nil
}
