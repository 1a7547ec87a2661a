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

type guideService struct {
	guideRepository store.GuideRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewGuideService constructs a GuideService backed by the given repository.
func NewGuideService(guideRepository store.GuideRepository, validator validators.Validator, logger *logger.Logger) GuideService {
	return &guideService{
		guideRepository: guideRepository,
		validator:       validator,
		logger:          logger,
	}
}

// ListGuides returns the whole guide roster. Admin only.
func (s *guideService) ListGuides(ctx context.Context, p access.Principal) ([]models.Guide, error) {
	if err := access.Authorize(p, access.ActionListGuides); err != nil {
		return nil, err
	}

	return s.guideRepository.FindAll(ctx)
}

// GetGuide returns a single guide by id.
func (s *guideService) GetGuide(ctx context.Context, p access.Principal, id int64) (models.Guide, error) {
	if err := access.Authorize(p, access.ActionGetGuide); err != nil {
		return models.Guide{}, err
	}

	return s.guideRepository.FindByID(ctx, id)
}

// CreateGuide validates and persists a new guide.
func (s *guideService) CreateGuide(ctx context.Context, p access.Principal, guide models.Guide) (models.Guide, error) {
	if err := access.Authorize(p, access.ActionCreateGuide); err != nil {
		return models.Guide{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(guide); err != nil {
		log.Err(err).Msg("invalid guide payload")
		return models.Guide{}, err
	}

	created, err := s.guideRepository.Create(ctx, guide)
	if err != nil {
		log.Err(err).Msg("guide creation ended with error")
		return models.Guide{}, fmt.Errorf("guide creation ended with error: %w", err)
	}

	return created, nil
}

// EditGuide replaces every stored field of the guide with the incoming
// payload.
func (s *guideService) EditGuide(ctx context.Context, p access.Principal, id int64, guide models.Guide) (models.Guide, error) {
	if err := access.Authorize(p, access.ActionEditGuide); err != nil {
		return models.Guide{}, err
	}

	log := logger.FromContext(ctx)

	if err := s.validator.Validate(guide); err != nil {
		log.Err(err).Msg("invalid guide payload")
		return models.Guide{}, err
	}

	guide.ID = id
	return s.guideRepository.Update(ctx, guide)
}

// DeleteGuide removes the guide by id.
func (s *guideService) DeleteGuide(ctx context.Context, p access.Principal, id int64) error {
	if err := access.Authorize(p, access.ActionDeleteGuide); err != nil {
		return err
	}

	return s.guideRepository.Delete(ctx, id)
}
