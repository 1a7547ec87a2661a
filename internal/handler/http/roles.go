package http

import (
	"encoding/json"
	"net/http"

	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/models"
)

// listRoles handles GET /api/v1/roles. Admin only.
func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := utils.PrincipalFromContext(ctx)

	roles, err := h.services.RoleService.ListRoles(ctx, principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]models.RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, role.ToDTO())
	}

	utils.WriteJSON(w, dtos, http.StatusOK)
}

// getRole handles GET /api/v1/roles/{id}. Admin only.
func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	role, err := h.services.RoleService.GetRole(ctx, principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, role.ToDTO(), http.StatusOK)
}

// createRole handles POST /api/v1/roles. Admin only.
func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	var role models.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RoleService.CreateRole(ctx, principal, role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", created.ID).Str("name", created.Name).Msg("role created")

	utils.WriteJSON(w, created.ToDTO(), http.StatusOK)
}

// editRole handles PUT /api/v1/roles/{id}. Admin only.
func (h *Handler) editRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var role models.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RoleService.EditRole(ctx, principal, id, role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated.ToDTO(), http.StatusOK)
}

// deleteRole handles DELETE /api/v1/roles/{id}. Admin only.
func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.RoleService.DeleteRole(ctx, principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
