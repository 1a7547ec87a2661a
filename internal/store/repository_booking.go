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

// bookingRepository is the PostgreSQL-backed implementation of
// [BookingRepository].
//
// Bookings hold weak references by id; every read resolves the referenced
// tour, user (with its role) and guide in a single joined query, so the
// caller receives fully hydrated [models.Booking] values. The guide side
// of the join is optional.
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookingRepository constructs a [BookingRepository] backed by the
// provided database connection and logger.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists the reference triple and returns the hydrated booking.
//
// A reference to a missing tour, user or guide fails the foreign key
// constraint and surfaces as a wrapped [ErrConstraintViolation].
func (r *bookingRepository) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBooking, booking.TourID, booking.UserID, nullableID(booking.GuideID))
	if err := row.Scan(&booking.ID); err != nil {
		log.Err(err).Str("func", "*bookingRepository.Create").Msg("error inserting booking")
		return models.Booking{}, classifyMutationError(err)
	}

	return r.FindByID(ctx, booking.ID)
}

// FindByID retrieves a single hydrated booking.
// An empty result set maps to [ErrBookingNotFound].
func (r *bookingRepository) FindByID(ctx context.Context, id int64) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectBookings().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	booking, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, ErrBookingNotFound
		}
		log.Err(err).Str("func", "*bookingRepository.FindByID").Msg("error scanning booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return booking, nil
}

// Find lists hydrated bookings matching the filter in id order. Nil filter
// fields apply no restriction, so the zero filter lists every booking.
func (r *bookingRepository) Find(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	builder := selectBookings()
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"b.user_id": *filter.UserID})
	}
	if filter.GuideID != nil {
		builder = builder.Where(sq.Eq{"b.guide_id": *filter.GuideID})
	}

	query, args, err := builder.OrderBy("b.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.Find").Msg("error querying bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*bookingRepository.Find").Msg("error scanning booking row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// Update performs a full replace of the booking's reference triple.
// Returns [ErrBookingNotFound] when no record with the given id exists.
func (r *bookingRepository) Update(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(booking.TableName()).
		Set("tour_id", booking.TourID).
		Set("user_id", booking.UserID).
		Set("guide_id", nullableID(booking.GuideID)).
		Where(sq.Eq{"id": booking.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.Update").Msg("error updating booking")
		return models.Booking{}, classifyMutationError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Booking{}, ErrBookingNotFound
	}

	return r.FindByID(ctx, booking.ID)
}

// Delete removes the booking with the given id.
// Returns [ErrBookingNotFound] when the record is absent.
func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, deleteBooking, id, ErrBookingNotFound)
}

// selectBookings starts the joined booking query shared by every read.
func selectBookings() sq.SelectBuilder {
	return sq.Select(bookingColumns...).
		From(bookingJoins).
		PlaceholderFormat(sq.Dollar)
}

// scanBooking reads one joined booking row and hydrates the referenced
// entities. The guide columns are nullable and yield a nil Guide when the
// booking has no guide attached.
func scanBooking(scan func(dest ...any) error) (models.Booking, error) {
	var booking models.Booking
	var tour models.Tour
	var user models.User
	var roleName string
	var guideID sql.NullInt64
	var guideName sql.NullString

	err := scan(
		&booking.ID, &booking.TourID, &booking.UserID, &guideID,
		&tour.Price, &tour.Difficulty, &tour.Start, &tour.Finish,
		&user.FirstName, &user.LastName, &user.Username, &user.RoleID, &roleName,
		&guideName,
	)
	if err != nil {
		return models.Booking{}, err
	}

	tour.ID = booking.TourID
	user.ID = booking.UserID
	user.Role = &models.Role{ID: user.RoleID, Name: roleName}

	booking.Tour = &tour
	booking.User = &user

	if guideID.Valid {
		id := guideID.Int64
		booking.GuideID = &id
		booking.Guide = &models.Guide{ID: id, Name: guideName.String}
	}

	return booking, nil
}

// nullableID converts an optional reference into its SQL representation.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
