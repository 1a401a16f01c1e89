package v1

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error message returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message returned by the API
type InfoResponse struct {
	Message string `json:"message"`
}

// PaginatedResponse wraps one page of a list endpoint
type PaginatedResponse[T any] struct {
	Data        []T   `json:"data"`
	TotalRows   int64 `json:"totalRows"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

func newPaginatedResponse[S any, T any](items []S, total int64, page httputil.Page, convert func(S) T) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Data:        mapSlice(items, convert),
		TotalRows:   total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Number,
		PageSize:    page.Size,
	}
}

// mapSlice converts items, returning an empty slice rather than nil so lists encode as []
func mapSlice[S any, T any](items []S, convert func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(httputil.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// OwnerRequest is the body of owner create and update
type OwnerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Company string `json:"company"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Validate for validating OwnerRequest struct
func (r *OwnerRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *OwnerRequest) toDomain(id string) *owners.Owner {
	return &owners.Owner{
		ID:      id,
		Name:    r.Name,
		Company: r.Company,
		Address: r.Address,
		TaxID:   r.TaxID,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}

// OwnerResponse represents an owner
type OwnerResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Company         string    `json:"company"`
	Address         string    `json:"address"`
	TaxID           string    `json:"taxId"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	IsDemo          bool      `json:"isDemo"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

func newOwnerResponse(o *owners.Owner) OwnerResponse {
	return OwnerResponse{
		ID:              o.ID,
		Name:            o.Name,
		Company:         o.Company,
		Address:         o.Address,
		TaxID:           o.TaxID,
		Email:           o.Email,
		Phone:           o.Phone,
		IsDemo:          o.IsDemo,
		DateTimeCreated: o.DateTimeCreated,
		DateTimeUpdated: o.DateTimeUpdated,
	}
}

// PropertyRequest is the body of property create and update
type PropertyRequest struct {
	Name             string          `json:"name" validate:"required,max=255"`
	Aliases          []string        `json:"aliases"`
	OwnerID          string          `json:"ownerId" validate:"required,uuid4"`
	CleaningCost     decimal.Decimal `json:"cleaningCost"`
	CheckInFee       decimal.Decimal `json:"checkInFee"`
	Commission       decimal.Decimal `json:"commission"`
	TeamPayment      decimal.Decimal `json:"teamPayment"`
	MonthlyFixedCost decimal.Decimal `json:"monthlyFixedCost"`
	CleaningTeamID   *string         `json:"cleaningTeamId" validate:"omitempty,uuid4"`
	Active           *bool           `json:"active"`
}

// Validate for validating PropertyRequest struct
func (r *PropertyRequest) Validate() error {
	return validators.ValidateStruct(r)
}

func (r *PropertyRequest) toDomain(id string) *properties.Property {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	teamID := r.CleaningTeamID
	if teamID != nil && *teamID == "" {
		teamID = nil
	}
	return &properties.Property{
		ID:               id,
		Name:             r.Name,
		Aliases:          r.Aliases,
		OwnerID:          r.OwnerID,
		CleaningCost:     r.CleaningCost,
		CheckInFee:       r.CheckInFee,
		Commission:       r.Commission,
		TeamPayment:      r.TeamPayment,
		MonthlyFixedCost: r.MonthlyFixedCost,
		CleaningTeamID:   teamID,
		Active:           active,
	}
}

// PropertyResponse represents a property
type PropertyResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Aliases          []string        `json:"aliases"`
	OwnerID          string          `json:"ownerId"`
	CleaningCost     decimal.Decimal `json:"cleaningCost"`
	CheckInFee       decimal.Decimal `json:"checkInFee"`
	Commission       decimal.Decimal `json:"commission"`
	TeamPayment      decimal.Decimal `json:"teamPayment"`
	MonthlyFixedCost decimal.Decimal `json:"monthlyFixedCost"`
	CleaningTeamID   *string         `json:"cleaningTeamId"`
	Active           bool            `json:"active"`
	IsDemo           bool            `json:"isDemo"`
	DateTimeCreated  time.Time       `json:"dateTimeCreated"`
	DateTimeUpdated  time.Time       `json:"dateTimeUpdated"`
}

func newPropertyResponse(p *properties.Property) PropertyResponse {
	aliases := p.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	return PropertyResponse{
		ID:               p.ID,
		Name:             p.Name,
		Aliases:          aliases,
		OwnerID:          p.OwnerID,
		CleaningCost:     p.CleaningCost,
		CheckInFee:       p.CheckInFee,
		Commission:       p.Commission,
		TeamPayment:      p.TeamPayment,
		MonthlyFixedCost: p.MonthlyFixedCost,
		CleaningTeamID:   p.CleaningTeamID,
		Active:           p.Active,
		IsDemo:           p.IsDemo,
		DateTimeCreated:  p.DateTimeCreated,
		DateTimeUpdated:  p.DateTimeUpdated,
	}
}

// TeamRequest is the body of cleaning team create and update
type TeamRequest struct {
	Name   string          `json:"name" validate:"required,max=255"`
	Email  string          `json:"email"`
	Phone  string          `json:"phone"`
	Rate   decimal.Decimal `json:"rate"`
	Status string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Validate for validating TeamRequest struct
func (r *TeamRequest) Validate() error {
	if err := validators.ValidateStruct(r); err != nil {
		return err
	}
	if r.Rate.IsNegative() {
		return validators.Invalid("rate must not be negative")
	}
	return nil
}

func (r *TeamRequest) toDomain(id string) *cleaning.Team {
	status := r.Status
	if status == "" {
		status = cleaning.TeamStatusActive
	}
	return &cleaning.Team{
		ID:     id,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Rate:   r.Rate,
		Status: status,
	}
}

// TeamResponse represents a cleaning team
type TeamResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Rate            decimal.Decimal `json:"rate"`
	Status          string          `json:"status"`
	IsDemo          bool            `json:"isDemo"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	DateTimeUpdated time.Time       `json:"dateTimeUpdated"`
}

func newTeamResponse(t *cleaning.Team) TeamResponse {
	return TeamResponse{
		ID:              t.ID,
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		Rate:            t.Rate,
		Status:          t.Status,
		IsDemo:          t.IsDemo,
		DateTimeCreated: t.DateTimeCreated,
		DateTimeUpdated: t.DateTimeUpdated,
	}
}

// ScheduleResponse represents a cleaning schedule
type ScheduleResponse struct {
	ID              string    `json:"id"`
	TeamID          string    `json:"teamId"`
	PropertyID      string    `json:"propertyId"`
	ReservationID   *string   `json:"reservationId"`
	ScheduledDate   string    `json:"scheduledDate"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DateTimeUpdated time.Time `json:"dateTimeUpdated"`
}

func newScheduleResponse(s *cleaning.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:              s.ID,
		TeamID:          s.TeamID,
		PropertyID:      s.PropertyID,
		ReservationID:   s.ReservationID,
		ScheduledDate:   formatDate(s.ScheduledDate),
		Status:          s.Status,
		Notes:           s.Notes,
		DateTimeCreated: s.DateTimeCreated,
		DateTimeUpdated: s.DateTimeUpdated,
	}
}
