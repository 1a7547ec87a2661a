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

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *roleRepository) Create(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRole, role.Name)
	if err := row.Scan(&role.ID); err != nil {
		log.Err(err).Str("func", "*roleRepository.Create").Msg("error inserting role")
		return models.Role{}, classifyMutationError(err)
	}

	return role, nil
}

func (r *roleRepository) FindByID(ctx context.Context, id int64) (models.Role, error) {
	return r.findOne(ctx, findRoleByID, id)
}

// FindByName retrieves the role with the given unique name. Registration
// depends on this lookup to resolve the default role; its absence is a
// provisioning gap reported as [ErrRoleNotFound].
func (r *roleRepository) FindByName(ctx context.Context, name string) (models.Role, error) {
	return r.findOne(ctx, findRoleByName, name)
}

func (r *roleRepository) findOne(ctx context.Context, query string, arg any) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}
		log.Err(err).Str("func", "*roleRepository.findOne").Msg("error scanning role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return role, nil
}

func (r *roleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllRoles)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.FindAll").Msg("error querying roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			log.Err(err).Str("func", "*roleRepository.FindAll").Msg("error scanning role row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

func (r *roleRepository) Update(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(role.TableName()).
		Set("name", role.Name).
		Where(sq.Eq{"id": role.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.Update").Msg("error updating role")
		return models.Role{}, classifyMutationError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Role{}, ErrRoleNotFound
	}

	return role, nil
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, deleteRole, id, ErrRoleNotFound)
}
