package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// pgCodes maps SQLSTATE codes to the domain sentinel callers switch on.
// Codes not listed pass through unmapped.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: parent case or staff is gone
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrConflict,      // lock_not_available: another transition holds the row
	"57014": domain.ErrConflict,      // query_canceled by statement_timeout
}

// MapError converts pgx/pgconn errors to domain errors, prefixing the
// entity name and key. Context errors are wrapped but never mapped.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodes[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %v (%s): %w", entity, id, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s %v: %w", entity, id, sentinel)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
