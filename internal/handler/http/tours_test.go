package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somemistake/BookingAPI/internal/access"
	"github.com/somemistake/BookingAPI/internal/service"
	"github.com/somemistake/BookingAPI/models"
)

func sampleTour(id int64) models.Tour {
	return models.Tour{
		ID:         id,
		Price:      1500,
		Difficulty: "hard",
		Start:      models.NewDate(2026, time.July, 1),
		Finish:     models.NewDate(2026, time.July, 14),
	}
}

// TestListTours_Routed verifies the listing projection, including the
// date wire format.
func TestListTours_Routed(t *testing.T) {
	tourSvc := &mockTourService{
		listFn: func(_ context.Context, p access.Principal) ([]models.Tour, error) {
			assert.Equal(t, routedUser, p)
			return []models.Tour{sampleTour(1)}, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService: authServiceFor(routedUser),
		TourService: tourSvc,
	})

	rec := doAuthorized(t, h, routedUser, http.MethodGet, "/api/v1/tours", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"price":1500,"difficulty":"hard","start":"2026-07-01","finish":"2026-07-14"}]`,
		rec.Body.String())
}

// TestCreateTour_Routed verifies that the decoded payload, dates
// included, reaches the service unchanged.
func TestCreateTour_Routed(t *testing.T) {
	tourSvc := &mockTourService{
		createFn: func(_ context.Context, p access.Principal, tour models.Tour) (models.Tour, error) {
			assert.Equal(t, routedAdmin, p)
			assert.Equal(t, int64(1500), tour.Price)
			assert.Equal(t, "hard", tour.Difficulty)
			assert.True(t, tour.Start.Time.Equal(models.NewDate(2026, time.July, 1).Time))
			tour.ID = 9
			return tour, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService: authServiceFor(routedAdmin),
		TourService: tourSvc,
	})

	body := `{"price":1500,"difficulty":"hard","start":"2026-07-01","finish":"2026-07-14"}`
	rec := doAuthorized(t, h, routedAdmin, http.MethodPost, "/api/v1/tours", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto models.TourDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(9), dto.ID)
}

// TestEditTour_Routed verifies that the path id is handed to the service
// alongside the payload, so the payload cannot redirect the edit to a
// different tour.
func TestEditTour_Routed(t *testing.T) {
	tourSvc := &mockTourService{
		editFn: func(_ context.Context, _ access.Principal, id int64, tour models.Tour) (models.Tour, error) {
			assert.Equal(t, int64(3), id)
			assert.Equal(t, int64(999), tour.ID)
			tour.ID = id
			return tour, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService: authServiceFor(routedAdmin),
		TourService: tourSvc,
	})

	body := `{"id":999,"price":2000,"difficulty":"easy","start":"2026-08-01","finish":"2026-08-05"}`
	rec := doAuthorized(t, h, routedAdmin, http.MethodPut, "/api/v1/tours/3", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto models.TourDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(3), dto.ID)
}

func TestGetTour_UserForbidden(t *testing.T) {
	tourSvc := &mockTourService{
		getFn: func(_ context.Context, _ access.Principal, _ int64) (models.Tour, error) {
			return models.Tour{}, access.ErrForbidden
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService: authServiceFor(routedUser),
		TourService: tourSvc,
	})

	rec := doAuthorized(t, h, routedUser, http.MethodGet, "/api/v1/tours/1", "")

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteTour_Routed(t *testing.T) {
	tourSvc := &mockTourService{
		deleteFn: func(_ context.Context, _ access.Principal, id int64) error {
			assert.Equal(t, int64(4), id)
			return nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService: authServiceFor(routedAdmin),
		TourService: tourSvc,
	})

	rec := doAuthorized(t, h, routedAdmin, http.MethodDelete, "/api/v1/tours/4", "")

	require.Equal(t, http.StatusOK, rec.Code)
}
