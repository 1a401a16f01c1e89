// Package properties models the managed short-term rental units.
package properties

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Property entity. Monetary fields are in euros, Commission is a percentage.
type Property struct {
	ID               string   `validate:"required,uuid4"`
	Name             string   `validate:"required,min=1,max=255"`
	Aliases          []string `validate:"dive,min=1,max=255"`
	OwnerID          string   `validate:"required,uuid4"`
	CleaningCost     decimal.Decimal
	CheckInFee       decimal.Decimal
	Commission       decimal.Decimal
	TeamPayment      decimal.Decimal
	MonthlyFixedCost decimal.Decimal
	CleaningTeamID   *string `validate:"omitempty,uuid4"`
	Active           bool
	IsDemo           bool
	DateTimeCreated  time.Time `validate:"required"`
	DateTimeUpdated  time.Time
}

// Validate for validating Property struct
func (p *Property) Validate() error {
	if err := validators.ValidateStruct(p); err != nil {
		return err
	}

	amounts := map[string]decimal.Decimal{
		"CleaningCost":     p.CleaningCost,
		"CheckInFee":       p.CheckInFee,
		"Commission":       p.Commission,
		"TeamPayment":      p.TeamPayment,
		"MonthlyFixedCost": p.MonthlyFixedCost,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			return validators.Invalid("%s must not be negative", field)
		}
	}
	if p.Commission.GreaterThan(hundred) {
		return validators.Invalid("Commission must be between 0 and 100")
	}
	return nil
}

// Names returns the property name followed by its aliases
func (p *Property) Names() []string {
	return append([]string{p.Name}, p.Aliases...)
}

// PropertyQuery filters property lists
type PropertyQuery struct {
	paging.Query
	Name           string `validate:"max=255"`
	OwnerID        string `validate:"omitempty,uuid4"`
	CleaningTeamID string `validate:"omitempty,uuid4"`
	Active         *bool
}

// SortableColumns are the columns a property list may be sorted by
var SortableColumns = []string{"name", "date_time_created", "commission", "cleaning_cost"}

// NewPropertyQuery returns an empty query
func NewPropertyQuery() *PropertyQuery {
	return &PropertyQuery{}
}

// Validate for validating PropertyQuery struct
func (q *PropertyQuery) Validate() error {
	return validators.ValidateStruct(q)
}
