// Package validators implements payload validation for the booking API.
//
// The constraints mirror the persisted column limits: names up to 100
// characters, username and password up to 20, all required fields
// non-empty. Tour date ordering (start before finish) is deliberately
// not validated; the API accepts any pair of dates.
package validators

import (
	"fmt"

	"github.com/somemistake/BookingAPI/models"
)

// Field length limits enforced on incoming payloads.
const (
	MaxNameLength     = 100
	MaxUsernameLength = 20
	MaxPasswordLength = 20
)

// RequestValidator validates the request payloads of the API.
// It is stateless and safe for concurrent use.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific check.
// Unknown payload types are rejected.
func (v *RequestValidator) Validate(payload any) error {
	switch p := payload.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(p)
	case models.AuthRequest:
		return v.validateAuth(p)
	case models.User:
		return v.validateUser(p)
	case models.Tour:
		return v.validateTour(p)
	case models.Guide:
		return v.validateGuide(p)
	case models.Role:
		return v.validateRole(p)
	case models.BookingRequest:
		return v.validateBooking(p)
	default:
		return fmt.Errorf("%w: unsupported payload type %T", ErrValidation, payload)
	}
}

func (v *RequestValidator) validateRegistration(p models.RegistrationRequest) error {
	if err := requireLength("firstName", p.FirstName, MaxNameLength); err != nil {
		return err
	}
	if err := requireLength("lastName", p.LastName, MaxNameLength); err != nil {
		return err
	}
	if err := requireLength("username", p.Username, MaxUsernameLength); err != nil {
		return err
	}
	return requireLength("password", p.Password, MaxPasswordLength)
}

func (v *RequestValidator) validateAuth(p models.AuthRequest) error {
	if err := requireLength("username", p.Username, MaxUsernameLength); err != nil {
		return err
	}
	return requireLength("password", p.Password, MaxPasswordLength)
}

func (v *RequestValidator) validateUser(p models.User) error {
	if err := requireLength("firstName", p.FirstName, MaxNameLength); err != nil {
		return err
	}
	if err := requireLength("lastName", p.LastName, MaxNameLength); err != nil {
		return err
	}
	if err := requireLength("username", p.Username, MaxUsernameLength); err != nil {
		return err
	}
	return requireLength("password", p.Password, MaxPasswordLength)
}

func (v *RequestValidator) validateTour(p models.Tour) error {
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.Difficulty == "" {
		return fmt.Errorf("%w: difficulty must not be empty", ErrValidation)
	}
	// start > finish intentionally passes: the ordering of tour dates
	// has never been enforced by the API.
	return nil
}

func (v *RequestValidator) validateGuide(p models.Guide) error {
	return requireLength("name", p.Name, MaxNameLength)
}

func (v *RequestValidator) validateRole(p models.Role) error {
	return requireLength("name", p.Name, MaxNameLength)
}

func (v *RequestValidator) validateBooking(p models.BookingRequest) error {
	if p.TourID <= 0 {
		return fmt.Errorf("%w: tourId is required", ErrValidation)
	}
	return nil
}

// requireLength checks that a required string field is non-empty and does
// not exceed its column limit.
func requireLength(field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	if len(value) > maxLen {
		return fmt.Errorf("%w: %s length must be between 1 and %d", ErrValidation, field, maxLen)
	}
	return nil
}
