// Package reservations models guest stays and their cost breakdown.
package reservations

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Reservation statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking platforms
const (
	PlatformAirbnb  = "airbnb"
	PlatformBooking = "booking"
	PlatformDirect  = "direct"
	PlatformExpedia = "expedia"
	PlatformOther   = "other"
)

// Reservation sources
const (
	SourceManual = "manual"
	SourceOCR    = "ocr"
	SourceDemo   = "demo"
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Reservation entity. Date fields hold calendar days at midnight UTC.
type Reservation struct {
	ID              string    `validate:"required,uuid4"`
	PropertyID      string    `validate:"required,uuid4"`
	GuestName       string    `validate:"required,min=1,max=255"`
	GuestEmail      string    `validate:"omitempty,email,max=255"`
	GuestPhone      string    `validate:"max=50"`
	CheckInDate     time.Time `validate:"required"`
	CheckOutDate    time.Time `validate:"required"`
	NumGuests       int       `validate:"min=1,max=50"`
	TotalAmount     decimal.Decimal
	Status          string `validate:"required,oneof=pending confirmed cancelled completed"`
	Platform        string `validate:"required,oneof=airbnb booking direct expedia other"`
	PlatformFee     decimal.Decimal
	CleaningFee     decimal.Decimal
	CheckInFee      decimal.Decimal
	CommissionFee   decimal.Decimal
	TeamPayment     decimal.Decimal
	NetAmount       decimal.Decimal
	Notes           string    `validate:"max=2000"`
	Source          string    `validate:"required,oneof=manual ocr demo"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Reservation struct
func (r *Reservation) Validate() error {
	if err := validators.ValidateStruct(r); err != nil {
		return err
	}
	if !r.CheckOutDate.After(r.CheckInDate) {
		return validators.Invalid("check-out date must be after check-in date")
	}
	if !r.TotalAmount.IsPositive() {
		return validators.Invalid("total amount must be greater than zero")
	}
	if r.PlatformFee.IsNegative() {
		return validators.Invalid("platform fee must not be negative")
	}
	return nil
}

// ApplyCosts derives the fee breakdown and net amount from the property cost profile
func (r *Reservation) ApplyCosts(p *properties.Property) {
	r.CleaningFee = p.CleaningCost
	r.CheckInFee = p.CheckInFee
	r.CommissionFee = r.TotalAmount.Mul(p.Commission).Div(decimal.NewFromInt(100)).Round(2)
	r.TeamPayment = p.TeamPayment
	r.NetAmount = r.TotalAmount.
		Sub(r.PlatformFee).
		Sub(r.CleaningFee).
		Sub(r.CheckInFee).
		Sub(r.CommissionFee).
		Sub(r.TeamPayment)
}

// Nights returns the number of nights of the stay
func (r *Reservation) Nights() int {
	return NightsBetween(r.CheckInDate, r.CheckOutDate)
}

// NightsWithin returns the nights of the stay that fall inside [from, to)
func (r *Reservation) NightsWithin(from, to time.Time) int {
	start := r.CheckInDate
	if from.After(start) {
		start = from
	}
	end := r.CheckOutDate
	if to.Before(end) {
		end = to
	}
	return NightsBetween(start, end)
}

// Blocks reports whether the reservation occupies its property's calendar
func (r *Reservation) Blocks() bool {
	return r.Status != StatusCancelled
}

// Overlaps reports whether the half-open night ranges of a and b intersect
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// CanTransition reports whether status from may move to status to
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NightsBetween counts whole days between two dates, zero when out is not after in
func NightsBetween(in, out time.Time) int {
	if !out.After(in) {
		return 0
	}
	return int(TruncateDay(out).Sub(TruncateDay(in)).Hours() / 24)
}

// TruncateDay drops the time of day and normalizes to UTC
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReservationQuery filters reservation lists. From/To select stays overlapping the window.
type ReservationQuery struct {
	paging.Query
	PropertyID string `validate:"omitempty,uuid4"`
	Status     string `validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Platform   string `validate:"omitempty,oneof=airbnb booking direct expedia other"`
	GuestName  string `validate:"max=255"`
	From       time.Time
	To         time.Time
}

// SortableColumns are the columns a reservation list may be sorted by
var SortableColumns = []string{"check_in_date", "check_out_date", "total_amount", "guest_name", "date_time_created"}

// NewReservationQuery returns an empty query
func NewReservationQuery() *ReservationQuery {
	return &ReservationQuery{}
}

// Validate for validating ReservationQuery struct
func (q *ReservationQuery) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return err
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return validators.Invalid("to must not be before from")
	}
	return nil
}
