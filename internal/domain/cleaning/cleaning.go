// Package cleaning models cleaning teams and the turnover cleanings they are scheduled for.
package cleaning

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Team statuses
const (
	TeamStatusActive   = "active"
	TeamStatusInactive = "inactive"
)

// Schedule statuses
const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

// Team entity
type Team struct {
	ID              string `validate:"required,uuid4"`
	Name            string `validate:"required,min=1,max=255"`
	Email           string `validate:"omitempty,email,max=255"`
	Phone           string `validate:"max=50"`
	Rate            decimal.Decimal
	Status          string `validate:"required,oneof=active inactive"`
	IsDemo          bool
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Team struct
func (t *Team) Validate() error {
	if err := validators.ValidateStruct(t); err != nil {
		return err
	}
	if t.Rate.IsNegative() {
		return validators.Invalid("rate must not be negative")
	}
	return nil
}

// Schedule is a cleaning job for a team at a property on a given day
type Schedule struct {
	ID              string    `validate:"required,uuid4"`
	TeamID          string    `validate:"required,uuid4"`
	PropertyID      string    `validate:"required,uuid4"`
	ReservationID   *string   `validate:"omitempty,uuid4"`
	ScheduledDate   time.Time `validate:"required"`
	Status          string    `validate:"required,oneof=scheduled completed cancelled"`
	Notes           string    `validate:"max=2000"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Schedule struct
func (s *Schedule) Validate() error {
	return validators.ValidateStruct(s)
}

// TeamQuery filters team lists
type TeamQuery struct {
	paging.Query
	Name   string `validate:"max=255"`
	Status string `validate:"omitempty,oneof=active inactive"`
}

// TeamSortableColumns are the columns a team list may be sorted by
var TeamSortableColumns = []string{"name", "rate", "date_time_created"}

// Validate for validating TeamQuery struct
func (q *TeamQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// ScheduleQuery filters schedule lists by team, property, status and scheduled date window
type ScheduleQuery struct {
	paging.Query
	TeamID     string `validate:"omitempty,uuid4"`
	PropertyID string `validate:"omitempty,uuid4"`
	Status     string `validate:"omitempty,oneof=scheduled completed cancelled"`
	From       time.Time
	To         time.Time
}

// ScheduleSortableColumns are the columns a schedule list may be sorted by
var ScheduleSortableColumns = []string{"scheduled_date", "date_time_created"}

// Validate for validating ScheduleQuery struct
func (q *ScheduleQuery) Validate() error {
	return validators.ValidateStruct(q)
}
