// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/somemistake/BookingAPI/internal/access"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the auth middleware stores the
// authenticated principal for the remainder of a request's processing.
//
// The context is a transport-layer hand-off only: handlers read the
// principal once and pass it explicitly into the service layer.
var PrincipalCtxKey = contextKey("principal")

// PrincipalFromContext retrieves the authenticated principal from the
// context.
//
// When no principal is attached (or the stored value has an unexpected
// type), the anonymous principal is returned rather than an error. The
// anonymous principal holds no role and passes no authorization check,
// so the fallback is safe for every downstream consumer.
func PrincipalFromContext(ctx context.Context) access.Principal {
	principal, ok := ctx.Value(PrincipalCtxKey).(access.Principal)
	if !ok {
		return access.Anonymous()
	}
	return principal
}
