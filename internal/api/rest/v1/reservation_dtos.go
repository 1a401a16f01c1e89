package v1

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// ReservationRequest is the body of reservation create and update
type ReservationRequest struct {
	PropertyID   string          `json:"propertyId" validate:"required,uuid4"`
	GuestName    string          `json:"guestName" validate:"required,max=255"`
	GuestEmail   string          `json:"guestEmail"`
	GuestPhone   string          `json:"guestPhone"`
	CheckInDate  string          `json:"checkInDate" validate:"required"`
	CheckOutDate string          `json:"checkOutDate" validate:"required"`
	NumGuests    int             `json:"numGuests" validate:"gte=0"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Platform     string          `json:"platform"`
	PlatformFee  decimal.Decimal `json:"platformFee"`
	Notes        string          `json:"notes"`
}

// Validate for validating ReservationRequest struct
func (r *ReservationRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *ReservationRequest) toDomain(id string) (*reservations.Reservation, error) {
	checkIn, err := httputil.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := httputil.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}
	return &reservations.Reservation{
		ID:           id,
		PropertyID:   r.PropertyID,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    r.NumGuests,
		TotalAmount:  r.TotalAmount,
		Platform:     r.Platform,
		PlatformFee:  r.PlatformFee,
		Notes:        r.Notes,
	}, nil
}

// StatusRequest is the body of the status endpoints
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate for validating StatusRequest struct
func (r *StatusRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ReservationResponse represents a reservation with its cost breakdown
type ReservationResponse struct {
	ID              string          `json:"id"`
	PropertyID      string          `json:"propertyId"`
	GuestName       string          `json:"guestName"`
	GuestEmail      string          `json:"guestEmail"`
	GuestPhone      string          `json:"guestPhone"`
	CheckInDate     string          `json:"checkInDate"`
	CheckOutDate    string          `json:"checkOutDate"`
	Nights          int             `json:"nights"`
	NumGuests       int             `json:"numGuests"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	Platform        string          `json:"platform"`
	PlatformFee     decimal.Decimal `json:"platformFee"`
	CleaningFee     decimal.Decimal `json:"cleaningFee"`
	CheckInFee      decimal.Decimal `json:"checkInFee"`
	CommissionFee   decimal.Decimal `json:"commissionFee"`
	TeamPayment     decimal.Decimal `json:"teamPayment"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	Notes           string          `json:"notes"`
	Source          string          `json:"source"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	DateTimeUpdated time.Time       `json:"dateTimeUpdated"`
}

func newReservationResponse(r *reservations.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		PropertyID:      r.PropertyID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		CheckInDate:     formatDate(r.CheckInDate),
		CheckOutDate:    formatDate(r.CheckOutDate),
		Nights:          r.Nights(),
		NumGuests:       r.NumGuests,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		Platform:        r.Platform,
		PlatformFee:     r.PlatformFee,
		CleaningFee:     r.CleaningFee,
		CheckInFee:      r.CheckInFee,
		CommissionFee:   r.CommissionFee,
		TeamPayment:     r.TeamPayment,
		NetAmount:       r.NetAmount,
		Notes:           r.Notes,
		Source:          r.Source,
		DateTimeCreated: r.DateTimeCreated,
		DateTimeUpdated: r.DateTimeUpdated,
	}
}
