package http

import (
	"encoding/json"
	"net/http"

	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/utils"
	"github.com/somemistake/BookingAPI/models"
)

// listBookings handles GET /api/v1/bookings with an optional guideId
// query parameter. The booking visibility rule is applied by the service
// layer based on the principal's role.
func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	guideID, err := guideIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid guideId query parameter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bookings, err := h.services.BookingService.ListBookings(ctx, principal, guideID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]models.BookingDTO, 0, len(bookings))
	for _, booking := range bookings {
		dtos = append(dtos, booking.ToDTO())
	}

	utils.WriteJSON(w, dtos, http.StatusOK)
}

// getBooking handles GET /api/v1/bookings/{id}.
func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.services.BookingService.GetBooking(ctx, principal, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, booking.ToDTO(), http.StatusOK)
}

// createBooking handles POST /api/v1/bookings. The booking is attributed
// to the authenticated principal and a guide is assigned by the server.
func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	booking, err := h.services.BookingService.CreateBooking(ctx, principal, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", booking.ID).Int64("tourID", booking.TourID).Msg("booking created")

	utils.WriteJSON(w, booking.ToDTO(), http.StatusCreated)
}

// editBooking handles PUT /api/v1/bookings/{id}. Admin only; the stored
// reference triple is replaced with the payload as sent.
func (h *Handler) editBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	booking, err := h.services.BookingService.EditBooking(ctx, principal, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, booking.ToDTO(), http.StatusOK)
}

// deleteBooking handles DELETE /api/v1/bookings/{id}. Admin only.
func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	principal := utils.PrincipalFromContext(ctx)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.BookingService.DeleteBooking(ctx, principal, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
