package http

import (
	"encoding/json"
	"net/http"

	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/models"
)

// listTours handles GET /api/v1/tours. Available to any authenticated
// principal.
func (h *Handler) listTours(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := utils.PrincipalFromContext(ctx)

	tours, err := h.services.TourService.ListTours(ctx, principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]models.TourDTO, 0, len(tours))
	for _, tour := range tours {
		dtos = append(dtos, tour.ToDTO())
	}

	utils.WriteJSON(w, dtos, http.StatusOK)
}

// getTour handles GET /api/v1/tours/{id}.
func (h *Handler) getTour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tour, err := h.services.TourService.GetTour(ctx, principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tour.ToDTO(), http.StatusOK)
}

// createTour handles POST /api/v1/tours. Admin only.
func (h *Handler) createTour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	var tour models.Tour
	if err := json.NewDecoder(r.Body).Decode(&tour); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.TourService.CreateTour(ctx, principal, tour)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", created.ID).Msg("tour created")

	utils.WriteJSON(w, created.ToDTO(), http.StatusOK)
}

// editTour handles PUT /api/v1/tours/{id}. Every stored field is
// replaced with the payload as sent.
func (h *Handler) editTour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var tour models.Tour
	if err := json.NewDecoder(r.Body).Decode(&tour); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.TourService.EditTour(ctx, principal, id, tour)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated.ToDTO(), http.StatusOK)
}

// deleteTour handles DELETE /api/v1/tours/{id}. Admin only.
func (h *Handler) deleteTour(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.TourService.DeleteTour(ctx, principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
