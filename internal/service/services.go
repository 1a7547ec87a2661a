package service

import (
	"github.com/somemistake/BookingAPI/internal/config"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/validators"
)

// Services bundles every domain service behind one injection point for
// the handler layer.
type Services struct {
	AuthService    AuthService
	BookingService BookingService
	TourService    TourService
	UserService    UserService
	GuideService   GuideService
	RoleService    RoleService
}

// NewServices wires the repositories and a shared request validator into
// the full service set.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.RoleRepository, validator, cfg.App, logger),
		BookingService: NewBookingService(storages.BookingRepository, storages.GuideRepository, validator, logger),
		TourService:    NewTourService(storages.TourRepository, validator, logger),
		UserService:    NewUserService(storages.UserRepository, validator, logger),
		GuideService:   NewGuideService(storages.GuideRepository, validator, logger),
		RoleService:    NewRoleService(storages.RoleRepository, validator, logger),
	}
}
