package service

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure. An unknown
	// username and a wrong password deliberately map to the same error so
	// the two cases stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenCreationFailed is returned when JWT generation fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single error all token validation
	// failures are normalised to: bad signature, wrong issuer, malformed
	// token and expiry all look the same to callers.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoGuidesAvailable is returned when booking creation finds an empty
	// guide roster. Guide assignment requires at least one guide.
	ErrNoGuidesAvailable = errors.New("no guides available")
)
