package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/somemistake/BookingAPI/internal/logger"
	"github.com/somemistake/BookingAPI/models"
)

// guideRepository is the PostgreSQL-backed implementation of [GuideRepository].
type guideRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGuideRepository constructs a [GuideRepository] backed by the provided
// database connection and logger.
func NewGuideRepository(db *DB, logger *logger.Logger) GuideRepository {
	logger.Debug().Msg("creating guide repository")
	return &guideRepository{
		db:     db,
		logger: logger,
	}
}

func (r *guideRepository) Create(ctx context.Context, guide models.Guide) (models.Guide, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createGuide, guide.Name)
	if err := row.Scan(&guide.ID); err != nil {
		log.Err(err).Str("func", "*guideRepository.Create").Msg("error inserting guide")
		return models.Guide{}, classifyMutationError(err)
	}

	return guide, nil
}

func (r *guideRepository) FindByID(ctx context.Context, id int64) (models.Guide, error) {
	log := logger.FromContext(ctx)

	var guide models.Guide
	row := r.db.QueryRowContext(ctx, findGuideByID, id)
	if err := row.Scan(&guide.ID, &guide.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Guide{}, ErrGuideNotFound
		}
		log.Err(err).Str("func", "*guideRepository.FindByID").Msg("error scanning guide")
		return models.Guide{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return guide, nil
}

func (r *guideRepository) FindAll(ctx context.Context) ([]models.Guide, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllGuides)
	if err != nil {
		log.Err(err).Str("func", "*guideRepository.FindAll").Msg("error querying guides")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var guides []models.Guide
	for rows.Next() {
		var guide models.Guide
		if err := rows.Scan(&guide.ID, &guide.Name); err != nil {
			log.Err(err).Str("func", "*guideRepository.FindAll").Msg("error scanning guide row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		guides = append(guides, guide)
	}

	return guides, rows.Err()
}

func (r *guideRepository) Update(ctx context.Context, guide models.Guide) (models.Guide, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(guide.TableName()).
		Set("name", guide.Name).
		Where(sq.Eq{"id": guide.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Guide{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*guideRepository.Update").Msg("error updating guide")
		return models.Guide{}, classifyMutationError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Guide{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Guide{}, ErrGuideNotFound
	}

	return guide, nil
}

func (r *guideRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, deleteGuide, id, ErrGuideNotFound)
}
