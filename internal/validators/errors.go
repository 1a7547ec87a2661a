package validators

import "errors"

// ErrValidation is the sentinel all validation failures wrap. The HTTP
// boundary matches against it to produce the 400 "not valid due to
// validation error" response.
var ErrValidation = errors.New("payload validation failed")
