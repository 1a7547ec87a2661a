package http

import (
	"context"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn     func(ctx context.Context, req models.RegistrationRequest) (models.User, error)
	loginFn            func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	createTokenFn      func(ctx context.Context, username string) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
	resolvePrincipalFn func(ctx context.Context, username string) (access.Principal, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegistrationRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	return m.createTokenFn(ctx, username)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolvePrincipal(ctx context.Context, username string) (access.Principal, error) {
	return m.resolvePrincipalFn(ctx, username)
}

// ─────────────────────────────────────────────
// Mock BookingService
// ─────────────────────────────────────────────

type mockBookingService struct {
	listFn   func(ctx context.Context, p access.Principal, guideID *int64) ([]models.Booking, error)
	getFn    func(ctx context.Context, p access.Principal, id int64) (models.Booking, error)
	createFn func(ctx context.Context, p access.Principal, req models.BookingRequest) (models.Booking, error)
	editFn   func(ctx context.Context, p access.Principal, id int64, req models.BookingRequest) (models.Booking, error)
	deleteFn func(ctx context.Context, p access.Principal, id int64) error
}

func (m *mockBookingService) ListBookings(ctx context.Context, p access.Principal, guideID *int64) ([]models.Booking, error) {
	return m.listFn(ctx, p, guideID)
}

func (m *mockBookingService) GetBooking(ctx context.Context, p access.Principal, id int64) (models.Booking, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, p access.Principal, req models.BookingRequest) (models.Booking, error) {
	return m.createFn(ctx, p, req)
}

func (m *mockBookingService) EditBooking(ctx context.Context, p access.Principal, id int64, req models.BookingRequest) (models.Booking, error) {
	return m.editFn(ctx, p, id, req)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, p access.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}

// ─────────────────────────────────────────────
// Mock TourService
// ─────────────────────────────────────────────

type mockTourService struct {
	listFn   func(ctx context.Context, p access.Principal) ([]models.Tour, error)
	getFn    func(ctx context.Context, p access.Principal, id int64) (models.Tour, error)
	createFn func(ctx context.Context, p access.Principal, tour models.Tour) (models.Tour, error)
	editFn   func(ctx context.Context, p access.Principal, id int64, tour models.Tour) (models.Tour, error)
	deleteFn func(ctx context.Context, p access.Principal, id int64) error
}

func (m *mockTourService) ListTours(ctx context.Context, p access.Principal) ([]models.Tour, error) {
	return m.listFn(ctx, p)
}

func (m *mockTourService) GetTour(ctx context.Context, p access.Principal, id int64) (models.Tour, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockTourService) CreateTour(ctx context.Context, p access.Principal, tour models.Tour) (models.Tour, error) {
	return m.createFn(ctx, p, tour)
}

func (m *mockTourService) EditTour(ctx context.Context, p access.Principal, id int64, tour models.Tour) (models.Tour, error) {
	return m.editFn(ctx, p, id, tour)
}

func (m *mockTourService) DeleteTour(ctx context.Context, p access.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	listFn   func(ctx context.Context, p access.Principal) ([]models.User, error)
	getFn    func(ctx context.Context, p access.Principal, id int64) (models.User, error)
	createFn func(ctx context.Context, p access.Principal, user models.User) (models.User, error)
	editFn   func(ctx context.Context, p access.Principal, id int64, user models.User) (models.User, error)
	deleteFn func(ctx context.Context, p access.Principal, id int64) error
}

func (m *mockUserService) ListUsers(ctx context.Context, p access.Principal) ([]models.User, error) {
	return m.listFn(ctx, p)
}

func (m *mockUserService) GetUser(ctx context.Context, p access.Principal, id int64) (models.User, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockUserService) CreateUser(ctx context.Context, p access.Principal, user models.User) (models.User, error) {
	return m.createFn(ctx, p, user)
}

func (m *mockUserService) EditUser(ctx context.Context, p access.Principal, id int64, user models.User) (models.User, error) {
	return m.editFn(ctx, p, id, user)
}

func (m *mockUserService) DeleteUser(ctx context.Context, p access.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}

// ─────────────────────────────────────────────
// Mock GuideService
// ─────────────────────────────────────────────

type mockGuideService struct {
	listFn   func(ctx context.Context, p access.Principal) ([]models.Guide, error)
	getFn    func(ctx context.Context, p access.Principal, id int64) (models.Guide, error)
	createFn func(ctx context.Context, p access.Principal, guide models.Guide) (models.Guide, error)
	editFn   func(ctx context.Context, p access.Principal, id int64, guide models.Guide) (models.Guide, error)
	deleteFn func(ctx context.Context, p access.Principal, id int64) error
}

func (m *mockGuideService) ListGuides(ctx context.Context, p access.Principal) ([]models.Guide, error) {
	return m.listFn(ctx, p)
}

func (m *mockGuideService) GetGuide(ctx context.Context, p access.Principal, id int64) (models.Guide, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockGuideService) CreateGuide(ctx context.Context, p access.Principal, guide models.Guide) (models.Guide, error) {
	return m.createFn(ctx, p, guide)
}

func (m *mockGuideService) EditGuide(ctx context.Context, p access.Principal, id int64, guide models.Guide) (models.Guide, error) {
	return m.editFn(ctx, p, id, guide)
}

func (m *mockGuideService) DeleteGuide(ctx context.Context, p access.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}

// ─────────────────────────────────────────────
// Mock RoleService
// ─────────────────────────────────────────────

type mockRoleService struct {
	listFn   func(ctx context.Context, p access.Principal) ([]models.Role, error)
	getFn    func(ctx context.Context, p access.Principal, id int64) (models.Role, error)
	createFn func(ctx context.Context, p access.Principal, role models.Role) (models.Role, error)
	editFn   func(ctx context.Context, p access.Principal, id int64, role models.Role) (models.Role, error)
	deleteFn func(ctx context.Context, p access.Principal, id int64) error
}

func (m *mockRoleService) ListRoles(ctx context.Context, p access.Principal) ([]models.Role, error) {
	return m.listFn(ctx, p)
}

func (m *mockRoleService) GetRole(ctx context.Context, p access.Principal, id int64) (models.Role, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockRoleService) CreateRole(ctx context.Context, p access.Principal, role models.Role) (models.Role, error) {
	return m.createFn(ctx, p, role)
}

func (m *mockRoleService) EditRole(ctx context.Context, p access.Principal, id int64, role models.Role) (models.Role, error) {
	return m.editFn(ctx, p, id, role)
}

func (m *mockRoleService) DeleteRole(ctx context.Context, p access.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}
