// Package quotations models priced estimates for cleaning and management services.
package quotations

import (
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Property types priced by the quotation formulas
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeVilla      = "villa"
	PropertyTypeCommercial = "commercial"
)

// Quotation statuses
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusExpired  = "expired"
)

// NumberPrefix starts every quotation number
const NumberPrefix = "ORC"

var transitions = map[string][]string{
	StatusDraft: {StatusSent, StatusAccepted, StatusRejected},
	StatusSent:  {StatusAccepted, StatusRejected, StatusExpired},
}

// PricingInput are the property characteristics that drive the price
type PricingInput struct {
	PropertyType   string  `validate:"required,oneof=apartment house villa commercial"`
	Area           float64 `validate:"gt=0,lte=100000"`
	ExteriorArea   float64 `validate:"gte=0,lte=100000"`
	Bedrooms       int     `validate:"gte=0,lte=100"`
	Bathrooms      int     `validate:"gte=0,lte=100"`
	IsDuplex       bool
	HasBBQ         bool
	HasGlassGarden bool
}

// Validate for validating PricingInput struct
func (p *PricingInput) Validate() error {
	return validators.ValidateStruct(p)
}

// Price is the result of evaluating the pricing formulas
type Price struct {
	BasePrice       decimal.Decimal
	AdditionalPrice decimal.Decimal
	TotalPrice      decimal.Decimal
}

// Quotation entity
type Quotation struct {
	ID              string `validate:"required,uuid4"`
	QuotationNumber string `validate:"required,max=32"`
	ClientName      string `validate:"required,min=1,max=255"`
	ClientEmail     string `validate:"omitempty,email,max=255"`
	ClientPhone     string `validate:"max=50"`
	PropertyAddress string `validate:"max=500"`
	PricingInput
	Price
	Status          string    `validate:"required,oneof=draft sent accepted rejected expired"`
	IssueDate       time.Time `validate:"required"`
	ValidUntil      time.Time `validate:"required"`
	Notes           string    `validate:"max=2000"`
	PaymentTerms    string    `validate:"max=500"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Quotation struct
func (q *Quotation) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return err
	}
	if q.ValidUntil.Before(q.IssueDate) {
		return validators.Invalid("valid until must not be before issue date")
	}
	return nil
}

// EffectiveStatus reports expired for a draft or sent quotation past its validity
func (q *Quotation) EffectiveStatus(now time.Time) string {
	if (q.Status == StatusDraft || q.Status == StatusSent) && now.After(endOfDay(q.ValidUntil)) {
		return StatusExpired
	}
	return q.Status
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

// FormatNumber builds the quotation number for a year and sequence
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", NumberPrefix, year, seq)
}

// NumberPrefixForYear returns the number prefix shared by all quotations of a year
func NumberPrefixForYear(year int) string {
	return fmt.Sprintf("%s-%d-", NumberPrefix, year)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// QuotationQuery filters quotation lists
type QuotationQuery struct {
	paging.Query
	Status     string `validate:"omitempty,oneof=draft sent accepted rejected expired"`
	ClientName string `validate:"max=255"`
}

// SortableColumns are the columns a quotation list may be sorted by
var SortableColumns = []string{"quotation_number", "client_name", "total_price", "issue_date", "date_time_created"}

// Validate for validating QuotationQuery struct
func (q *QuotationQuery) Validate() error {
	return validators.ValidateStruct(q)
}
