package service

import (
	"context"
	"fmt"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/internal/validators"
	"github.com/somemistake/BookingAPI/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListUsers returns every user. Admin only.
func (s *userService) ListUsers(ctx context.Context, p access.Principal) ([]models.User, error) {
	if err := access.Authorize(p, access.ActionListUsers); err != nil {
		return nil, err
	}

	return s.userRepository.FindAll(ctx)
}

// GetUser returns a single user by id.
func (s *userService) GetUser(ctx context.Context, p access.Principal, id int64) (models.User, error) {
	if err := access.Authorize(p, access.ActionGetUser); err != nil {
		return models.User{}, err
	}

	return s.userRepository.FindByID(ctx, id)
}

// CreateUser validates and persists a new user. The incoming plaintext
// password is hashed before it reaches the store; the plaintext is never
// persisted or logged.
func (s *userService) CreateUser(ctx context.Context, p access.Principal, user models.User) (models.User, error) {
	if err := access.Authorize(p, access.ActionCreateUser); err != nil {
		return models.User{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(user); err != nil {
		log.Err(err).Msg("invalid user payload")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = hash

	created, err := s.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// EditUser replaces every stored field of the user with the incoming
// payload, hashing the supplied password first.
func (s *userService) EditUser(ctx context.Context, p access.Principal, id int64, user models.User) (models.User, error) {
	if err := access.Authorize(p, access.ActionEditUser); err != nil {
		return models.User{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(user); err != nil {
		log.Err(err).Msg("invalid user payload")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = hash

	user.ID = id
	return s.userRepository.Update(ctx, user)
}

// DeleteUser removes the user by id.
func (s *userService) DeleteUser(ctx context.Context, p access.Principal, id int64) error {
	if err := access.Authorize(p, access.ActionDeleteUser); err != nil {
		return err
	}

	return s.userRepository.Delete(ctx, id)
}
