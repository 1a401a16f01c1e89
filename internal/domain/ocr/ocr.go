// Package ocr turns booking confirmations and invoices into reservation drafts.
package ocr

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/shopspring/decimal"
)

// Required extraction fields
const (
	FieldPropertyName = "property_name"
	FieldGuestName    = "guest_name"
	FieldGuestEmail   = "guest_email"
	FieldGuestPhone   = "guest_phone"
	FieldCheckIn      = "check_in"
	FieldCheckOut     = "check_out"
	FieldGuests       = "guests"
	FieldTotalAmount  = "total_amount"
	FieldPlatform     = "platform"
)

// RequiredFields must be present before a reservation can be created from a document
var RequiredFields = []string{FieldPropertyName, FieldGuestName, FieldCheckIn, FieldCheckOut, FieldTotalAmount}

// Document is an uploaded file handed to a provider
type Document struct {
	FileName string
	MIMEType string
	Data     []byte
}

// Extraction is the raw provider output: plain text and, when the provider
// returns structured data, field values keyed by the Field* names
type Extraction struct {
	Provider string
	Text     string
	Fields   map[string]string
}

// ExtractedReservation is a reservation draft parsed from a document
type ExtractedReservation struct {
	PropertyName  string
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	NumGuests     int
	TotalAmount   *decimal.Decimal
	Platform      string
	MissingFields []string
	Confidence    float64
}

// Complete reports whether every required field was found
func (e *ExtractedReservation) Complete() bool {
	return len(e.MissingFields) == 0
}

// PropertyMatch is the property best matching an extracted name
type PropertyMatch struct {
	PropertyID   string
	PropertyName string
	MatchedName  string
	Score        float64
}

// ProcessResult is returned by document processing
type ProcessResult struct {
	Provider    string
	RawText     string
	Extracted   *ExtractedReservation
	Match       *PropertyMatch
	Reservation *reservations.Reservation
}

// ProviderInfo describes the configured provider
type ProviderInfo struct {
	Provider  string
	Model     string
	Available bool
}
