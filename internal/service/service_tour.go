// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/internal/store"
	"github.com/somemistake/BookingAPI/internal/validators"
	"github.com/somemistake/BookingAPI/models"
)

type tourService struct {
	tourRepository store.TourRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewTourService constructs a TourService backed by the given repository.
func NewTourService(tourRepository store.TourRepository, validator validators.Validator, logger *logger.Logger) TourService {
	return &tourService{
		tourRepository: tourRepository,
		validator:      validator,
		logger:         logger,
	}
}

// ListTours returns every tour. Available to any authenticated principal.
func (s *tourService) ListTours(ctx context.Context, p access.Principal) ([]models.Tour, error) {
	if err := access.Authorize(p, access.ActionListTours); err != nil {
		return nil, err
	}

	return s.tourRepository.FindAll(ctx)
}

// GetTour returns a single tour by id.
func (s *tourService) GetTour(ctx context.Context, p access.Principal, id int64) (models.Tour, error) {
	if err := access.Authorize(p, access.ActionGetTour); err != nil {
		return models.Tour{}, err
	}

	return s.tourRepository.FindByID(ctx, id)
}

// CreateTour validates and persists a new tour. A start date after the
// finish date is accepted as sent.
func (s *tourService) CreateTour(ctx context.Context, p access.Principal, tour models.Tour) (models.Tour, error) {
	if err := access.Authorize(p, access.ActionCreateTour); err != nil {
		return models.Tour{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(tour); err != nil {
		log.Err(err).Msg("invalid tour payload")
		return models.Tour{}, err
	}

	created, err := s.tourRepository.Create(ctx, tour)
	if err != nil {
		log.Err(err).Str("difficulty", tour.Difficulty).Msg("tour creation ended with error")
		return models.Tour{}, fmt.Errorf("tour creation ended with error: %w", err)
	}

	return created, nil
}

// EditTour replaces every stored field of the tour with the incoming
// payload. Fields omitted from the payload are overwritten with their
// zero values.
func (s *tourService) EditTour(ctx context.Context, p access.Principal, id int64, tour models.Tour) (models.Tour, error) {
	if err := access.Authorize(p, access.ActionEditTour); err != nil {
		return models.Tour{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(tour); err != nil {
		log.Err(err).Msg("invalid tour payload")
		return models.Tour{}, err
	}

	tour.ID = id
	return s.tourRepository.Update(ctx, tour)
}

// DeleteTour removes the tour by id.
func (s *tourService) DeleteTour(ctx context.Context, p access.Principal, id int64) error {
	if err := access.Authorize(p, access.ActionDeleteTour); err != nil {
		return err
	}

	return s.tourRepository.Delete(ctx, id)
}
