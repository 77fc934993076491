// Package repository implements the data access layer for the application.
package repository

import (
	"errors"

	"socialhub/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the postgres SQLSTATE for duplicate-key errors.
const uniqueViolation = "23505"

// translateError maps low-level store errors to the application taxonomy.
// A unique violation becomes a Conflict with the given message; everything
// else is wrapped as an internal error.
func translateError(err error, conflictMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.NewConflictError(conflictMsg)
	}
	return models.NewInternalError(err)
}
