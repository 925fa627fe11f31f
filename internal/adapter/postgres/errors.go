package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// MapError converts pgx/pgconn errors to domain errors.
// ref identifies the row (an id or a key) in the message.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, entity, ref string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrConflict)
		case codeCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, ref, err)
}
