package store

import (
	"context"

	"github.com/somemistake/BookingAPI/models"
)

// UserRepository is the persistence contract for user accounts.
// Users are read together with their resolved role reference.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	// Update replaces every mutable field of the stored record with the
	// values of user; omitted fields overwrite with their zero values.
	Update(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// RoleRepository is the persistence contract for roles.
type RoleRepository interface {
	Create(ctx context.Context, role models.Role) (models.Role, error)
	FindByID(ctx context.Context, id int64) (models.Role, error)
	FindByName(ctx context.Context, name string) (models.Role, error)
	FindAll(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, role models.Role) (models.Role, error)
	Delete(ctx context.Context, id int64) error
}

// GuideRepository is the persistence contract for guides.
type GuideRepository interface {
	Create(ctx context.Context, guide models.Guide) (models.Guide, error)
	FindByID(ctx context.Context, id int64) (models.Guide, error)
	FindAll(ctx context.Context) ([]models.Guide, error)
	Update(ctx context.Context, guide models.Guide) (models.Guide, error)
	Delete(ctx context.Context, id int64) error
}

// TourRepository is the persistence contract for tours.
type TourRepository interface {
	Create(ctx context.Context, tour models.Tour) (models.Tour, error)
	FindByID(ctx context.Context, id int64) (models.Tour, error)
	FindAll(ctx context.Context) ([]models.Tour, error)
	Update(ctx context.Context, tour models.Tour) (models.Tour, error)
	Delete(ctx context.Context, id int64) error
}

// BookingFilter narrows booking listings. Nil fields apply no restriction.
// Results come back in the store's natural id order.
type BookingFilter struct {
	UserID  *int64
	GuideID *int64
}

// BookingRepository is the persistence contract for bookings.
// Read operations hydrate the referenced tour, user and guide via joins.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
	FindByID(ctx context.Context, id int64) (models.Booking, error)
	Find(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	Update(ctx context.Context, booking models.Booking) (models.Booking, error)
	Delete(ctx context.Context, id int64) error
}
