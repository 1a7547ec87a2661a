package service

import (
	"context"
	"errors"

	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/models"
)

// errStorage is the generic storage failure returned by mocks in
// error-path tests.
var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn       func(ctx context.Context, id int64) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findAllFn        func(ctx context.Context) ([]models.User, error)
	updateFn         func(ctx context.Context, user models.User) (models.User, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.RoleRepository
// ─────────────────────────────────────────────

type mockRoleRepository struct {
	createFn     func(ctx context.Context, role models.Role) (models.Role, error)
	findByIDFn   func(ctx context.Context, id int64) (models.Role, error)
	findByNameFn func(ctx context.Context, name string) (models.Role, error)
	findAllFn    func(ctx context.Context) ([]models.Role, error)
	updateFn     func(ctx context.Context, role models.Role) (models.Role, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockRoleRepository) Create(ctx context.Context, role models.Role) (models.Role, error) {
	if m.createFn != nil {
		return m.createFn(ctx, role)
	}
	return role, nil
}

func (m *mockRoleRepository) FindByID(ctx context.Context, id int64) (models.Role, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Role{}, nil
}

func (m *mockRoleRepository) FindByName(ctx context.Context, name string) (models.Role, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return models.Role{}, nil
}

func (m *mockRoleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockRoleRepository) Update(ctx context.Context, role models.Role) (models.Role, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, role)
	}
	return role, nil
}

func (m *mockRoleRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.GuideRepository
// ─────────────────────────────────────────────

type mockGuideRepository struct {
	createFn   func(ctx context.Context, guide models.Guide) (models.Guide, error)
	findByIDFn func(ctx context.Context, id int64) (models.Guide, error)
	findAllFn  func(ctx context.Context) ([]models.Guide, error)
	updateFn   func(ctx context.Context, guide models.Guide) (models.Guide, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockGuideRepository) Create(ctx context.Context, guide models.Guide) (models.Guide, error) {
	if m.createFn != nil {
		return m.createFn(ctx, guide)
	}
	return guide, nil
}

func (m *mockGuideRepository) FindByID(ctx context.Context, id int64) (models.Guide, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Guide{}, nil
}

func (m *mockGuideRepository) FindAll(ctx context.Context) ([]models.Guide, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockGuideRepository) Update(ctx context.Context, guide models.Guide) (models.Guide, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, guide)
	}
	return guide, nil
}

func (m *mockGuideRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.TourRepository
// ─────────────────────────────────────────────

type mockTourRepository struct {
	createFn   func(ctx context.Context, tour models.Tour) (models.Tour, error)
	findByIDFn func(ctx context.Context, id int64) (models.Tour, error)
	findAllFn  func(ctx context.Context) ([]models.Tour, error)
	updateFn   func(ctx context.Context, tour models.Tour) (models.Tour, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockTourRepository) Create(ctx context.Context, tour models.Tour) (models.Tour, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tour)
	}
	return tour, nil
}

func (m *mockTourRepository) FindByID(ctx context.Context, id int64) (models.Tour, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Tour{}, nil
}

func (m *mockTourRepository) FindAll(ctx context.Context) ([]models.Tour, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTourRepository) Update(ctx context.Context, tour models.Tour) (models.Tour, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, tour)
	}
	return tour, nil
}

func (m *mockTourRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.BookingRepository
// ─────────────────────────────────────────────

type mockBookingRepository struct {
	createFn   func(ctx context.Context, booking models.Booking) (models.Booking, error)
	findByIDFn func(ctx context.Context, id int64) (models.Booking, error)
	findFn     func(ctx context.Context, filter store.BookingFilter) ([]models.Booking, error)
	updateFn   func(ctx context.Context, booking models.Booking) (models.Booking, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return booking, nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id int64) (models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Booking{}, nil
}

func (m *mockBookingRepository) Find(ctx context.Context, filter store.BookingFilter) ([]models.Booking, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockBookingRepository) Update(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, booking)
	}
	return booking, nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: validators.Validator
// ─────────────────────────────────────────────

type mockValidator struct {
	validateFn func(payload any) error
}

func (m *mockValidator) Validate(payload any) error {
	if m.validateFn != nil {
		return m.validateFn(payload)
	}
	return nil
}
