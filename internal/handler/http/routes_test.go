package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somemistake/BookingAPI/internal/service"
	"github.com/somemistake/BookingAPI/models"
)

// TestRoutes_AuthGate pins which parts of the route table sit behind the
// bearer-token gate: registration and login are public, everything under
// /api/v1 rejects anonymous requests with 401 before any handler runs.
func TestRoutes_AuthGate(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegistrationRequest) (models.User, error) {
			return models.User{ID: 1, Username: req.Username}, nil
		},
		loginFn: func(_ context.Context, _ models.AuthRequest) (models.Token, error) {
			return models.Token{SignedString: "signed"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{name: "register is public", method: http.MethodPost, target: "/register", body: `{"username":"jane","password":"pw"}`, wantStatus: http.StatusOK},
		{name: "auth is public", method: http.MethodPost, target: "/auth", body: `{"username":"jane","password":"pw"}`, wantStatus: http.StatusOK},
		{name: "bookings are gated", method: http.MethodGet, target: "/api/v1/bookings", wantStatus: http.StatusUnauthorized},
		{name: "guides are gated", method: http.MethodGet, target: "/api/v1/guides", wantStatus: http.StatusUnauthorized},
		{name: "roles are gated", method: http.MethodGet, target: "/api/v1/roles", wantStatus: http.StatusUnauthorized},
		{name: "tours are gated", method: http.MethodGet, target: "/api/v1/tours", wantStatus: http.StatusUnauthorized},
		{name: "users are gated", method: http.MethodGet, target: "/api/v1/users", wantStatus: http.StatusUnauthorized},
		{name: "booking mutations are gated", method: http.MethodPost, target: "/api/v1/bookings", body: `{"tourId":1}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, target: "/api/v2/bookings", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestRoutes_TraceIDOnEveryResponse verifies the trace middleware is
// mounted ahead of the auth gate, so even rejected requests carry an
// X-Trace-ID header for correlation.
func TestRoutes_TraceIDOnEveryResponse(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
