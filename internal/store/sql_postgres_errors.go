package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyMutationError maps a driver-level error from an INSERT or UPDATE
// to the repository's sentinel errors.
//
// Mapping (see https://www.postgresql.org/docs/current/errcodes-appendix.html):
//   - unique_violation (23505) on the users table → [ErrUsernameAlreadyExists]
//   - any other Class 23 integrity violation → wrapped [ErrConstraintViolation]
//     carrying the pg error message for the 409 response body
//   - everything else → wrapped "unexpected DB error"
func classifyMutationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.TableName == "users" {
			return ErrUsernameAlreadyExists
		}
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Message)

	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Message)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
