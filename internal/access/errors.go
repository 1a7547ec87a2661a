package access

import "errors"

var (
	// ErrUnauthenticated is returned by Authorize when the principal holds
	// no provisioned role, i.e. the request carries no valid identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned by Authorize when the principal is
	// authenticated but its role does not permit the requested action.
	ErrForbidden = errors.New("access denied")
)
