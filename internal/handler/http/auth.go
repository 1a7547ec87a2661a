package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/service"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/models"
)

// register handles POST /register.
//
// On success it responds 200 with the created user's outward
// representation; the password never appears in the response. When the
// default user role has not been provisioned the response is 204 with an
// empty body, matching the API's long-standing behaviour for that state.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrRoleNotFound) {
			log.Warn().Msg("default role is not provisioned, registration refused")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser.ToDTO(), http.StatusOK)
}

// authenticate handles POST /auth.
//
// On success it responds 200 with the signed token string as the body.
// Every credential failure, unknown username and wrong password alike,
// responds 204 with an empty body so the two cases cannot be told apart.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("username", req.Username).Msg("login failed")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(token.SignedString))
}
