package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table and always
// reads accounts together with their role via a join.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns the user with its
// server-assigned ID.
//
// Error handling:
//   - unique_violation on users.username → [ErrUsernameAlreadyExists]
//   - other integrity violations → wrapped [ErrConstraintViolation]
//   - any other driver-level error → wrapped "unexpected DB error"
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.Username, user.Password, user.RoleID)
	if err := row.Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, classifyMutationError(err)
	}

	return user, nil
}

// FindByID retrieves a single user by id, role resolved.
// An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

// FindByUsername retrieves a single user by its unique username, role
// resolved. An empty result set maps to [ErrUserNotFound].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, findUserByUsername, username)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	user, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindAll returns every user in id order.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindAll").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Update performs a full replace of every mutable field of the stored
// record. Fields absent from the incoming representation overwrite the
// stored values with their zero values.
//
// Returns [ErrUserNotFound] when no record with the given id exists.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(user.TableName()).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("username", user.Username).
		Set("password", user.Password).
		Set("role_id", user.RoleID).
		Where(sq.Eq{"id": user.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error updating user")
		return models.User{}, classifyMutationError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.FindByID(ctx, user.ID)
}

// Delete removes the user with the given id.
// Returns [ErrUserNotFound] when the record is absent.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, deleteUser, id, ErrUserNotFound)
}

// scanUser reads one user row (base columns plus the joined role name)
// using the provided scan function, which lets it serve both *sql.Row and
// *sql.Rows call sites.
func scanUser(scan func(dest ...any) error) (models.User, error) {
	var user models.User
	var roleName string

	if err := scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Password, &user.RoleID, &roleName); err != nil {
		return models.User{}, err
	}

	user.Role = &models.Role{ID: user.RoleID, Name: roleName}
	return user, nil
}

// deleteByID is the shared delete-by-id implementation of all repositories:
// absence of the target row surfaces as the repository's NotFound sentinel,
// never as a silent no-op.
func deleteByID(ctx context.Context, db *DB, query string, id int64, notFound error) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		log.Err(err).Str("func", "deleteByID").Msg("error deleting record")
		return classifyMutationError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
