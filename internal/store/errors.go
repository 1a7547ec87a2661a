package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// The NotFound messages double as the public error body text, so their
// wording follows the "<entity> not found" convention of the API.
var (
	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set, or a user delete affects no rows.
	ErrUserNotFound = errors.New("user not found")

	// ErrRoleNotFound is returned when a role lookup by id or name matches
	// nothing. At registration time this signals a provisioning gap: the
	// default role has not been seeded into the database.
	ErrRoleNotFound = errors.New("role not found")

	// ErrGuideNotFound is returned when a guide lookup or delete targets an
	// absent record.
	ErrGuideNotFound = errors.New("guide not found")

	// ErrTourNotFound is returned when a tour lookup or delete targets an
	// absent record.
	ErrTourNotFound = errors.New("tour not found")

	// ErrBookingNotFound is returned when a booking lookup or delete targets
	// an absent record.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUsernameAlreadyExists is returned when an insert or update fails
	// the unique constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrConstraintViolation is returned when a mutation violates a
	// database-level integrity constraint other than the username unique
	// index (for example, a booking referencing a deleted tour). The pg
	// error message is attached via wrapping.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
