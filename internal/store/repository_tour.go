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

// tourRepository is the PostgreSQL-backed implementation of [TourRepository].
//
// Start and finish dates are stored in DATE columns and travel through the
// [models.Date] wrapper. The store does not enforce start <= finish.
type tourRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTourRepository constructs a [TourRepository] backed by the provided
// database connection and logger.
func NewTourRepository(db *DB, logger *logger.Logger) TourRepository {
	logger.Debug().Msg("creating tour repository")
	return &tourRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tourRepository) Create(ctx context.Context, tour models.Tour) (models.Tour, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTour, tour.Price, tour.Difficulty, tour.Start, tour.Finish)
	if err := row.Scan(&tour.ID); err != nil {
		log.Err(err).Str("func", "*tourRepository.Create").Msg("error inserting tour")
		return models.Tour{}, classifyMutationError(err)
	}

	return tour, nil
}

func (r *tourRepository) FindByID(ctx context.Context, id int64) (models.Tour, error) {
	log := logger.FromContext(ctx)

	var tour models.Tour
	row := r.db.QueryRowContext(ctx, findTourByID, id)
	if err := row.Scan(&tour.ID, &tour.Price, &tour.Difficulty, &tour.Start, &tour.Finish); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tour{}, ErrTourNotFound
		}
		log.Err(err).Str("func", "*tourRepository.FindByID").Msg("error scanning tour")
		return models.Tour{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context) ([]models.Tour, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllTours)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.FindAll").Msg("error querying tours")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tours []models.Tour
	for rows.Next() {
		var tour models.Tour
		if err := rows.Scan(&tour.ID, &tour.Price, &tour.Difficulty, &tour.Start, &tour.Finish); err != nil {
			log.Err(err).Str("func", "*tourRepository.FindAll").Msg("error scanning tour row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

func (r *tourRepository) Update(ctx context.Context, tour models.Tour) (models.Tour, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(tour.TableName()).
		Set("price", tour.Price).
		Set("difficulty", tour.Difficulty).
		Set("start", tour.Start).
		Set("finish", tour.Finish).
		Where(sq.Eq{"id": tour.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Tour{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.Update").Msg("error updating tour")
		return models.Tour{}, classifyMutationError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Tour{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Tour{}, ErrTourNotFound
	}

	return tour, nil
}

func (r *tourRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, deleteTour, id, ErrTourNotFound)
}
