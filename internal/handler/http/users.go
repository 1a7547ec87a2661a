package http

import (
	"encoding/json"
	"net/http"

	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/models"
)

// listUsers handles GET /api/v1/users. Admin only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := utils.PrincipalFromContext(ctx)

	users, err := h.services.UserService.ListUsers(ctx, principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]models.UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, user.ToDTO())
	}

	utils.WriteJSON(w, dtos, http.StatusOK)
}

// getUser handles GET /api/v1/users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.ToDTO(), http.StatusOK)
}

// createUser handles POST /api/v1/users. Admin only; unlike /register
// the payload carries an explicit role reference.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, principal, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", created.ID).Str("username", created.Username).Msg("user created")

	utils.WriteJSON(w, created.ToDTO(), http.StatusOK)
}

// editUser handles PUT /api/v1/users/{id}. Every stored field is
// replaced with the payload as sent.
func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.EditUser(ctx, principal, id, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated.ToDTO(), http.StatusOK)
}

// deleteUser handles DELETE /api/v1/users/{id}. Admin only.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
