package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/validators"
	"github.com/somemistake/BookingAPI/models"
)

// bookingService is the concrete implementation of BookingService.
//
// It owns the two pieces of conditional logic the API has: the booking
// visibility rule (who sees which bookings) and guide assignment on
// creation. Authorization is checked through the central decision table
// before any repository call.
type bookingService struct {
	bookingRepository store.BookingRepository
	guideRepository   store.GuideRepository
	validator         validators.Validator

	// randInt picks a uniformly distributed value in [0, n). Injected so
	// tests can fix the selection; production uses math/rand.
	randInt func(n int) int

	logger *logger.Logger
}

// NewBookingService constructs a BookingService with uniform-random guide
// selection.
func NewBookingService(bookingRepository store.BookingRepository, guideRepository store.GuideRepository, validator validators.Validator, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		guideRepository:   guideRepository,
		validator:         validator,
		randInt:           rand.Intn,
		logger:            logger,
	}
}

// ListBookings returns the bookings visible to the principal, optionally
// narrowed to a single guide.
//
// Administrative principals see every booking; the guide filter, when
// supplied, is pushed down to the store with no ownership restriction.
// Any other principal sees only its own bookings, with the guide filter
// applied on top of the user-scoped result; bookings without a guide
// never match the filter. Result order is the store's natural id order.
func (s *bookingService) ListBookings(ctx context.Context, p access.Principal, guideID *int64) ([]models.Booking, error) {
	if err := access.Authorize(p, access.ActionListBookings); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	if p.IsAdmin() {
		bookings, err := s.bookingRepository.Find(ctx, store.BookingFilter{GuideID: guideID})
		if err != nil {
			log.Err(err).Msg("booking listing failed")
			return nil, fmt.Errorf("booking listing failed: %w", err)
		}
		return bookings, nil
	}

	bookings, err := s.bookingRepository.Find(ctx, store.BookingFilter{UserID: &p.UserID})
	if err != nil {
		log.Err(err).Int64("userID", p.UserID).Msg("booking listing failed")
		return nil, fmt.Errorf("booking listing failed: %w", err)
	}

	return access.VisibleBookings(p, bookings, guideID), nil
}

// GetBooking returns a single booking by id.
func (s *bookingService) GetBooking(ctx context.Context, p access.Principal, id int64) (models.Booking, error) {
	if err := access.Authorize(p, access.ActionGetBooking); err != nil {
		return models.Booking{}, err
	}

	return s.bookingRepository.FindByID(ctx, id)
}

// CreateBooking books the requested tour for the principal and assigns a
// guide chosen uniformly at random from the current roster.
//
// The created booking is always attributed to the principal's own
// identity; any user reference supplied in the request is ignored, which
// closes the forgery path of booking on someone else's behalf.
//
// Returns [ErrNoGuidesAvailable] when the guide roster is empty.
func (s *bookingService) CreateBooking(ctx context.Context, p access.Principal, req models.BookingRequest) (models.Booking, error) {
	if err := access.Authorize(p, access.ActionCreateBooking); err != nil {
		return models.Booking{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(req); err != nil {
		log.Err(err).Msg("invalid booking payload")
		return models.Booking{}, err
	}

	guides, err := s.guideRepository.FindAll(ctx)
	if err != nil {
		log.Err(err).Msg("guide roster lookup failed")
		return models.Booking{}, fmt.Errorf("guide roster lookup failed: %w", err)
	}
	if len(guides) == 0 {
		log.Warn().Msg("booking creation with empty guide roster")
		return models.Booking{}, ErrNoGuidesAvailable
	}

	guide := guides[s.randInt(len(guides))]

	booking := models.Booking{
		TourID:  req.TourID,
		UserID:  p.UserID,
		GuideID: &guide.ID,
	}

	created, err := s.bookingRepository.Create(ctx, booking)
	if err != nil {
		log.Err(err).Int64("tourID", req.TourID).Msg("booking creation ended with error")
		return models.Booking{}, fmt.Errorf("booking creation ended with error: %w", err)
	}

	return created, nil
}

// EditBooking replaces the booking's full reference triple with the
// incoming one. An omitted guide reference overwrites the stored one with
// no guide.
func (s *bookingService) EditBooking(ctx context.Context, p access.Principal, id int64, req models.BookingRequest) (models.Booking, error) {
	if err := access.Authorize(p, access.ActionEditBooking); err != nil {
		return models.Booking{}, err
	}

	booking, err := s.bookingRepository.FindByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}

	booking.TourID = req.TourID
	booking.UserID = req.UserID
	booking.GuideID = req.GuideID

	return s.bookingRepository.Update(ctx, booking)
}

// DeleteBooking removes the booking by id.
func (s *bookingService) DeleteBooking(ctx context.Context, p access.Principal, id int64) error {
	if err := access.Authorize(p, access.ActionDeleteBooking); err != nil {
		return err
	}

	return s.bookingRepository.Delete(ctx, id)
}
