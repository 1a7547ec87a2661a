package store

import (
	"context"

	"github.com/somemistake/BookingAPI/internal/config"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/migrations"
)

// Storages bundles every repository behind its interface so the service
// layer can be wired from a single value.
type Storages struct {
	UserRepository    UserRepository
	RoleRepository    RoleRepository
	GuideRepository   GuideRepository
	TourRepository    TourRepository
	BookingRepository BookingRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		RoleRepository:    NewRoleRepository(db, log),
		GuideRepository:   NewGuideRepository(db, log),
		TourRepository:    NewTourRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
	}, nil
}
