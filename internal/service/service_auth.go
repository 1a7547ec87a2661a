package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/config"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/internal/validators"
	"github.com/somemistake/BookingAPI/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT token
// lifecycle using the user and role repositories for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// user accounts.
	userRepository store.UserRepository

	// roleRepository resolves the default registration role.
	roleRepository store.RoleRepository

	// validator checks registration and login payloads before any store
	// call is made.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, roleRepository store.RoleRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account with the default
// non-administrative role.
//
// The incoming plaintext password is replaced by its bcrypt hash before
// the account ever reaches the store.
//
// Returns the persisted user (with server-assigned ID and resolved role) or:
//   - a wrapped [validators.ErrValidation] if the payload fails field
//     constraints;
//   - [store.ErrRoleNotFound] if the default role has not been provisioned
//     (a configuration precondition, not a client error);
//   - [store.ErrUsernameAlreadyExists] if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid registration payload")
		return models.User{}, err
	}

	role, err := a.roleRepository.FindByName(ctx, access.RoleNameUser)
	if err != nil {
		log.Err(err).Str("role", access.RoleNameUser).Msg("default registration role lookup failed")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  passwordHash,
		RoleID:    role.ID,
	}

	registeredUser, err := a.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.Role = &role
	return registeredUser, nil
}

// Login authenticates an existing user and issues a token for it.
//
// The supplied password is compared against the stored bcrypt hash. An
// unknown username and a mismatched password both return
// [ErrInvalidCredentials]: the caller cannot tell the two cases apart,
// which prevents username enumeration.
func (a *authService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(req); err != nil {
		log.Err(err).Str("username", req.Username).Msg("invalid login payload")
		return models.Token{}, err
	}

	foundUser, err := a.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", req.Username).Msg("login with unknown username")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		log.Debug().Str("username", req.Username).Msg("login with wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, foundUser.Username)
}

// CreateToken issues a signed JWT for the given username.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal turns a validated token subject into the principal
// attached to the request: the stored user's identity plus its role-derived
// authority.
func (a *authService) ResolvePrincipal(ctx context.Context, username string) (access.Principal, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("principal resolution failed")
		return access.Anonymous(), err
	}

	principal := access.Principal{
		UserID:   user.ID,
		Username: user.Username,
	}
	if user.Role != nil {
		principal.Role = access.ParseRole(user.Role.Name)
	}

	return principal, nil
}
