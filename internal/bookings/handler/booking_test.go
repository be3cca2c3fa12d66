package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

type fakeBookingService struct {
	lastInput *model.BookingInput
}

func (f *fakeBookingService) Create(_ context.Context, input *model.BookingInput) (*model.Booking, error) {
	f.lastInput = input
	return &model.Booking{
		ID:             "booking-1",
		TourID:         input.TourID,
		NumberOfPeople: input.NumberOfPeople,
		StartDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		TotalPrice:     *input.TotalPrice,
		Status:         "pending",
	}, nil
}

func (f *fakeBookingService) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if id == "booking-1" {
		return &model.Booking{ID: id, TourID: "tour-1", Status: "confirmed"}, nil
	}
	return nil, apperrors.NotFound("Booking")
}

func (f *fakeBookingService) GetByUserID(_ context.Context, userID string) ([]*model.Booking, error) {
	if userID != "user-1" {
		return nil, apperrors.NotFound("User")
	}
	return []*model.Booking{}, nil
}

func newTestRouter(svc *fakeBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestCreate(t *testing.T) {
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	body := `{"tourId":"tour-1","customerName":"Jane","customerEmail":"jane@example.com","numberOfPeople":2,"startDate":"2024-07-01","totalPrice":530}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "530.00", got["totalPrice"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "2024-07-01T00:00:00Z", got["startDate"])
	assert.Nil(t, got["endDate"])
}

func TestCreate_NonNumericPrice(t *testing.T) {
	svc := &fakeBookingService{}
	router := newTestRouter(svc)

	body := `{"tourId":"tour-1","numberOfPeople":2,"startDate":"2024-07-01","totalPrice":"lots"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid booking data"}`, rec.Body.String())
	assert.Nil(t, svc.lastInput)
}

func TestGetByID(t *testing.T) {
	router := newTestRouter(&fakeBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/booking-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}

func TestGetByUser(t *testing.T) {
	router := newTestRouter(&fakeBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/user-1/bookings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/ghost/bookings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
