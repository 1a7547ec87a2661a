package service

import (
	"context"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/models"
)

// AuthService handles registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegistrationRequest) (models.User, error)
	Login(ctx context.Context, req models.AuthRequest) (models.Token, error)
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolvePrincipal(ctx context.Context, username string) (access.Principal, error)
}

// BookingService implements booking visibility, guide assignment and the
// role-gated booking mutations. Every operation takes the authenticated
// principal explicitly; nothing is read from ambient state.
type BookingService interface {
	ListBookings(ctx context.Context, p access.Principal, guideID *int64) ([]models.Booking, error)
	GetBooking(ctx context.Context, p access.Principal, id int64) (models.Booking, error)
	CreateBooking(ctx context.Context, p access.Principal, req models.BookingRequest) (models.Booking, error)
	EditBooking(ctx context.Context, p access.Principal, id int64, req models.BookingRequest) (models.Booking, error)
	DeleteBooking(ctx context.Context, p access.Principal, id int64) error
}

// TourService implements the role-gated tour CRUD with full-replace edit
// semantics.
type TourService interface {
	ListTours(ctx context.Context, p access.Principal) ([]models.Tour, error)
	GetTour(ctx context.Context, p access.Principal, id int64) (models.Tour, error)
	CreateTour(ctx context.Context, p access.Principal, tour models.Tour) (models.Tour, error)
	EditTour(ctx context.Context, p access.Principal, id int64, tour models.Tour) (models.Tour, error)
	DeleteTour(ctx context.Context, p access.Principal, id int64) error
}

// UserService implements the role-gated user CRUD with full-replace edit
// semantics. Incoming plaintext passwords are hashed before persistence.
type UserService interface {
	ListUsers(ctx context.Context, p access.Principal) ([]models.User, error)
	GetUser(ctx context.Context, p access.Principal, id int64) (models.User, error)
	CreateUser(ctx context.Context, p access.Principal, user models.User) (models.User, error)
	EditUser(ctx context.Context, p access.Principal, id int64, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, p access.Principal, id int64) error
}

// GuideService implements the admin-only guide CRUD.
type GuideService interface {
	ListGuides(ctx context.Context, p access.Principal) ([]models.Guide, error)
	GetGuide(ctx context.Context, p access.Principal, id int64) (models.Guide, error)
	CreateGuide(ctx context.Context, p access.Principal, guide models.Guide) (models.Guide, error)
	EditGuide(ctx context.Context, p access.Principal, id int64, guide models.Guide) (models.Guide, error)
	DeleteGuide(ctx context.Context, p access.Principal, id int64) error
}

// RoleService implements the admin-only role CRUD.
type RoleService interface {
	ListRoles(ctx context.Context, p access.Principal) ([]models.Role, error)
	GetRole(ctx context.Context, p access.Principal, id int64) (models.Role, error)
	CreateRole(ctx context.Context, p access.Principal, role models.Role) (models.Role, error)
	EditRole(ctx context.Context, p access.Principal, id int64, role models.Role) (models.Role, error)
	DeleteRole(ctx context.Context, p access.Principal, id int64) error
}
