package http

import (
	"encoding/json"
	"net/http"

	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/models"
)

// listGuides handles GET /api/v1/guides. Admin only.
func (h *Handler) listGuides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := utils.PrincipalFromContext(ctx)

	guides, err := h.services.GuideService.ListGuides(ctx, principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]models.GuideDTO, 0, len(guides))
	for _, guide := range guides {
		dtos = append(dtos, guide.ToDTO())
	}

	utils.WriteJSON(w, dtos, http.StatusOK)
}

// getGuide handles GET /api/v1/guides/{id}.
func (h *Handler) getGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	guide, err := h.services.GuideService.GetGuide(ctx, principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, guide.ToDTO(), http.StatusOK)
}

// createGuide handles POST /api/v1/guides. Admin only.
func (h *Handler) createGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.GuideService.CreateGuide(ctx, principal, guide)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", created.ID).Msg("guide created")

	utils.WriteJSON(w, created.ToDTO(), http.StatusOK)
}

// editGuide handles PUT /api/v1/guides/{id}.
func (h *Handler) editGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.GuideService.EditGuide(ctx, principal, id, guide)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated.ToDTO(), http.StatusOK)
}

// deleteGuide handles DELETE /api/v1/guides/{id}. Admin only.
func (h *Handler) deleteGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.GuideService.DeleteGuide(ctx, principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
