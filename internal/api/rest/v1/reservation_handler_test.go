//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	reservationID = "2b7d4a51-9a0c-4d6e-8f13-5c2a7e9b0d11"
	propertyID    = "5e0f7c3a-1d2b-4c8e-a9f4-6b3d2e1c0a99"
)

func sampleReservation() *reservations.Reservation {
	return &reservations.Reservation{
		ID:           reservationID,
		PropertyID:   propertyID,
		GuestName:    "John Smith",
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		NumGuests:    2,
		TotalAmount:  decimal.NewFromInt(400),
		Status:       reservations.StatusPending,
		Platform:     reservations.PlatformAirbnb,
		Source:       reservations.SourceManual,
	}
}

func TestReservationHandler_Create_Success(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))

	mockReservationService.On("Create", mock.Anything, mock.MatchedBy(func(r *reservations.Reservation) bool {
		return r.PropertyID == propertyID &&
			r.CheckInDate.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) &&
			r.TotalAmount.Equal(decimal.NewFromInt(400))
	})).Return(sampleReservation(), nil)

	body := fmt.Sprintf(`{"propertyId":%q,"guestName":"John Smith","checkInDate":"2026-03-10","checkOutDate":"2026-03-14","numGuests":2,"totalAmount":"400","platform":"airbnb"}`, propertyID)
	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/reservations", body))
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, reservationID, response.ID)
	assert.Equal(t, "2026-03-10", response.CheckInDate)
	assert.Equal(t, 4, response.Nights)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Create_InvalidDate(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))

	body := fmt.Sprintf(`{"propertyId":%q,"guestName":"John Smith","checkInDate":"10/03/2026","checkOutDate":"2026-03-14"}`, propertyID)
	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/reservations", body))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	mockReservationService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReservationHandler_Create_Overlap(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))
	mockReservationService.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("property is booked on those dates: %w", apperrors.ErrConflict))

	body := fmt.Sprintf(`{"propertyId":%q,"guestName":"John Smith","checkInDate":"2026-03-10","checkOutDate":"2026-03-14"}`, propertyID)
	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/reservations", body))
	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReservationHandler_UpdateStatus(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))

	confirmed := sampleReservation()
	confirmed.Status = reservations.StatusConfirmed
	mockReservationService.On("UpdateStatus", mock.Anything, reservationID, reservations.StatusConfirmed).Return(confirmed, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPatch, "/api/reservations/"+reservationID+"/status", `{"status":"confirmed"}`), idParam(reservationID))
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_List_InvalidFromDate(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/reservations?from=yesterday", ""))
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockReservationService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestReservationHandler_Upcoming_DefaultDays(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))
	mockReservationService.On("UpcomingCheckIns", mock.Anything, 0).Return([]*reservations.Reservation{sampleReservation()}, nil)
	mockReservationService.On("UpcomingCheckOuts", mock.Anything, 0).Return(nil, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/reservations/upcoming", ""))
	handler.Upcoming(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response UpcomingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, defaultUpcomingDays, response.Days)
	assert.Len(t, response.CheckIns, 1)
	assert.Empty(t, response.CheckOuts)
	mockReservationService.AssertExpectations(t)
}

func TestReservationHandler_Upcoming_InvalidDays(t *testing.T) {
	mockReservationService := new(MockReservationService)
	handler := NewReservationHandler(mockReservationService, testLogger(t))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/reservations/upcoming?days=soon", ""))
	handler.Upcoming(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockReservationService.AssertNotCalled(t, "UpcomingCheckIns", mock.Anything, mock.Anything)
}
