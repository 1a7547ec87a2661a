package service

import (
	"context"
	"fmt"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/validators"
	"github.com/somemistake/BookingAPI/models"
)

type roleService struct {
	roleRepository store.RoleRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewRoleService constructs a RoleService backed by the given repository.
func NewRoleService(roleRepository store.RoleRepository, validator validators.Validator, logger *logger.Logger) RoleService {
	return &roleService{
		roleRepository: roleRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListRoles returns every role. Admin only.
func (s *roleService) ListRoles(ctx context.Context, p access.Principal) ([]models.Role, error) {
	if err := access.Authorize(p, access.ActionListRoles); err != nil {
		return nil, err
	}

	return s.roleRepository.FindAll(ctx)
}

// GetRole returns a single role by id.
func (s *roleService) GetRole(ctx context.Context, p access.Principal, id int64) (models.Role, error) {
	if err := access.Authorize(p, access.ActionGetRole); err != nil {
		return models.Role{}, err
	}

	return s.roleRepository.FindByID(ctx, id)
}

// CreateRole validates and persists a new role.
func (s *roleService) CreateRole(ctx context.Context, p access.Principal, role models.Role) (models.Role, error) {
	if err := access.Authorize(p, access.ActionCreateRole); err != nil {
		return models.Role{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(role); err != nil {
		log.Err(err).Msg("invalid role payload")
		return models.Role{}, err
	}

	created, err := s.roleRepository.Create(ctx, role)
	if err != nil {
		log.Err(err).Str("name", role.Name).Msg("role creation ended with error")
		return models.Role{}, fmt.Errorf("role creation ended with error: %w", err)
	}

	return created, nil
}

// EditRole replaces the stored role name with the incoming one.
func (s *roleService) EditRole(ctx context.Context, p access.Principal, id int64, role models.Role) (models.Role, error) {
	if err := access.Authorize(p, access.ActionEditRole); err != nil {
		return models.Role{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(role); err != nil {
		log.Err(err).Msg("invalid role payload")
		return models.Role{}, err
	}

	role.ID = id
	return s.roleRepository.Update(ctx, role)
}

// DeleteRole removes the role by id.
func (s *roleService) DeleteRole(ctx context.Context, p access.Principal, id int64) error {
	if err := access.Authorize(p, access.ActionDeleteRole); err != nil {
		return err
	}

	return s.roleRepository.Delete(ctx, id)
}
