package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// errInvalidID is reported when a path id segment is not a number.
var errInvalidID = errors.New("invalid id")

// idFromRequest parses the {id} path segment of the request URL.
func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// guideIDFromRequest parses the optional guideId query parameter of a
// booking listing request. A missing parameter yields nil; a present but
// non-numeric value is an error.
func guideIDFromRequest(r *http.Request) (*int64, error) {
	raw := r.URL.Query().Get("guideId")
	if raw == "" {
		return nil, nil
	}
	guideID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errInvalidID
	}
	return &guideID, nil
}
