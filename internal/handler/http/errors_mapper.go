package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/service"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/internal/validators"
	"github.com/somemistake/BookingAPI/models"
)

// notFoundErrors lists the store sentinels that map to 404. Each
// sentinel's text already reads "<entity> not found" and is sent to the
// client verbatim.
var notFoundErrors = []error{
	store.ErrUserNotFound,
	store.ErrRoleNotFound,
	store.ErrGuideNotFound,
	store.ErrTourNotFound,
	store.ErrBookingNotFound,
}

// mapError translates a service or store error into the HTTP status code
// and client-facing message of the uniform error body.
//
// Validation failures and constraint violations keep the detail of the
// underlying error in the message, prefixed the way clients of this API
// expect. Anything unrecognized collapses to 500 with a generic message
// so internal details never leak.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, validators.ErrValidation):
		return http.StatusBadRequest, "not valid due to validation error: " + errorDetail(err, validators.ErrValidation)
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return http.StatusConflict, "not valid due to constraint violation error: " + store.ErrUsernameAlreadyExists.Error()
	case errors.Is(err, store.ErrConstraintViolation):
		return http.StatusConflict, "not valid due to constraint violation error: " + errorDetail(err, store.ErrConstraintViolation)
	case errors.Is(err, service.ErrNoGuidesAvailable):
		return http.StatusConflict, service.ErrNoGuidesAvailable.Error()
	case errors.Is(err, access.ErrUnauthenticated):
		return http.StatusUnauthorized, access.ErrUnauthenticated.Error()
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden, access.ErrForbidden.Error()
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized, service.ErrTokenIsExpiredOrInvalid.Error()
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, target.Error()
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// errorDetail strips the sentinel's own text from a wrapped error so the
// client message carries only the specific part.
func errorDetail(err, sentinel error) string {
	detail := err.Error()
	detail = strings.TrimPrefix(detail, sentinel.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return sentinel.Error()
	}
	return detail
}

// writeError logs the error and writes the uniform JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := mapError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred during request processing")
	} else {
		log.Err(err).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.ErrorResponse{Status: status, Message: message}, status)
}
