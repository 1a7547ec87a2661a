// Package access implements the authorization policy of the booking API.
//
// It answers exactly two questions: which subset of a booking collection a
// principal may see, and whether a principal may perform a given action.
// Both answers are pure functions of the principal and its role; the package
// holds no state and never touches the store.
package access

import (
	"github.com/somemistake/BookingAPI/models"
)

// Role names as provisioned in the roles table.
const (
	RoleNameAdmin = "ROLE_ADMIN"
	RoleNameUser  = "ROLE_USER"
)

// Role is the enumerated authority level of a principal.
// The zero value RoleNone means the principal holds no provisioned role
// (anonymous or unknown), which denies every action.
type Role int

const (
	RoleNone Role = iota
	RoleUser
	RoleAdmin
)

// ParseRole maps a stored role name onto its enumerated value.
// Unknown names map to RoleNone.
func ParseRole(name string) Role {
	switch name {
	case RoleNameAdmin:
		return RoleAdmin
	case RoleNameUser:
		return RoleUser
	default:
		return RoleNone
	}
}

// String returns the stored role name for the enumerated value.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return RoleNameAdmin
	case RoleUser:
		return RoleNameUser
	default:
		return ""
	}
}

// Principal is the authenticated identity attached to a request after
// token validation. Core operations receive it as an explicit parameter;
// nothing in the system reads it from ambient state.
type Principal struct {
	UserID   int64
	Username string
	Role     Role
}

// Anonymous returns the principal used when no identity is attached to a
// request context. It holds no role and therefore passes no authorization
// check.
func Anonymous() Principal {
	return Principal{}
}

// IsAdmin reports whether the principal holds the administrative role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Action enumerates every role-gated operation of the API.
type Action int

const (
	ActionListBookings Action = iota
	ActionGetBooking
	ActionCreateBooking
	ActionEditBooking
	ActionDeleteBooking

	ActionListTours
	ActionGetTour
	ActionCreateTour
	ActionEditTour
	ActionDeleteTour

	ActionListUsers
	ActionGetUser
	ActionCreateUser
	ActionEditUser
	ActionDeleteUser

	ActionListGuides
	ActionGetGuide
	ActionCreateGuide
	ActionEditGuide
	ActionDeleteGuide

	ActionListRoles
	ActionGetRole
	ActionCreateRole
	ActionEditRole
	ActionDeleteRole
)

// requirement is the authorization level an action demands.
type requirement int

const (
	// requireAuthenticated admits any principal holding either defined role.
	requireAuthenticated requirement = iota

	// requireUser admits only the non-administrative role. Used for
	// booking creation, where the created record is attributed to the
	// principal itself.
	requireUser

	// requireAdmin admits only the administrative role.
	requireAdmin
)

// policy is the central decision table mapping each action to its
// authorization level. Evaluated before any business logic runs.
var policy = map[Action]requirement{
	ActionListBookings:  requireAuthenticated,
	ActionGetBooking:    requireAuthenticated,
	ActionCreateBooking: requireUser,
	ActionEditBooking:   requireAdmin,
	ActionDeleteBooking: requireAdmin,

	ActionListTours:  requireAuthenticated,
	ActionGetTour:    requireAdmin,
	ActionCreateTour: requireAdmin,
	ActionEditTour:   requireAuthenticated,
	ActionDeleteTour: requireAdmin,

	ActionListUsers:  requireAdmin,
	ActionGetUser:    requireAuthenticated,
	ActionCreateUser: requireAdmin,
	ActionEditUser:   requireAuthenticated,
	ActionDeleteUser: requireAdmin,

	ActionListGuides:  requireAdmin,
	ActionGetGuide:    requireAdmin,
	ActionCreateGuide: requireAdmin,
	ActionEditGuide:   requireAdmin,
	ActionDeleteGuide: requireAdmin,

	ActionListRoles:  requireAdmin,
	ActionGetRole:    requireAdmin,
	ActionCreateRole: requireAdmin,
	ActionEditRole:   requireAdmin,
	ActionDeleteRole: requireAdmin,
}

// Authorize decides whether the principal may perform the action.
//
// Returns nil when allowed, or:
//   - ErrUnauthenticated when the principal holds no provisioned role;
//   - ErrForbidden when the role is insufficient for the action.
//
// A denial is a hard failure raised before the target resource is touched.
func Authorize(p Principal, action Action) error {
	if p.Role == RoleNone {
		return ErrUnauthenticated
	}

	req, ok := policy[action]
	if !ok {
		return ErrForbidden
	}

	switch req {
	case requireAuthenticated:
		return nil
	case requireUser:
		if p.Role == RoleUser {
			return nil
		}
	case requireAdmin:
		if p.Role == RoleAdmin {
			return nil
		}
	}

	return ErrForbidden
}

// VisibleBookings applies the booking visibility rule to a collection.
//
// Administrative principals see every booking; an optional guide filter,
// if supplied, restricts the result to bookings for that guide with no
// ownership restriction. Any other principal sees only bookings whose
// user reference equals its own identity, with the guide filter applied
// on top of the user-scoped result.
//
// The input order is preserved; the function never mutates the input slice.
func VisibleBookings(p Principal, bookings []models.Booking, guideID *int64) []models.Booking {
	visible := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !p.IsAdmin() && b.UserID != p.UserID {
			continue
		}
		visible = append(visible, b)
	}

	return FilterByGuide(visible, guideID)
}

// FilterByGuide restricts bookings to those serving the given guide.
// A nil guideID returns the input unchanged. Bookings without a guide
// reference never match an affirmative guide filter. The filter is
// idempotent: applying it twice with the same id yields the same set.
func FilterByGuide(bookings []models.Booking, guideID *int64) []models.Booking {
	if guideID == nil {
		return bookings
	}

	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.GuideID != nil && *b.GuideID == *guideID {
			filtered = append(filtered, b)
		}
	}

	return filtered
}
