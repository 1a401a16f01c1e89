package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PropertyModel is the GORM database model for properties
type PropertyModel struct {
	ID               string                      `gorm:"primaryKey;type:varchar(36)"`
	Name             string                      `gorm:"not null;index;type:varchar(255)"`
	Aliases          datatypes.JSONSlice[string] `gorm:"type:json"`
	OwnerID          string                      `gorm:"not null;index;type:varchar(36)"`
	CleaningCost     decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	CheckInFee       decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	Commission       decimal.Decimal             `gorm:"type:numeric(5,2);not null;default:0"`
	TeamPayment      decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	MonthlyFixedCost decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	CleaningTeamID   *string                     `gorm:"index;type:varchar(36)"`
	Active           bool                        `gorm:"not null;index"`
	IsDemo           bool                        `gorm:"not null;default:false;index"`
	DateTimeCreated  time.Time                   `gorm:"not null"`
	DateTimeUpdated  time.Time
}

// TableName specifies the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts GORM model to domain entity
func (m *PropertyModel) ToDomain() *properties.Property {
	aliases := make([]string, len(m.Aliases))
	copy(aliases, m.Aliases)
	return &properties.Property{
		ID:               m.ID,
		Name:             m.Name,
		Aliases:          aliases,
		OwnerID:          m.OwnerID,
		CleaningCost:     m.CleaningCost,
		CheckInFee:       m.CheckInFee,
		Commission:       m.Commission,
		TeamPayment:      m.TeamPayment,
		MonthlyFixedCost: m.MonthlyFixedCost,
		CleaningTeamID:   m.CleaningTeamID,
		Active:           m.Active,
		IsDemo:           m.IsDemo,
		DateTimeCreated:  m.DateTimeCreated,
		DateTimeUpdated:  m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PropertyModel) FromDomain(p *properties.Property) {
	m.ID = p.ID
	m.Name = p.Name
	m.Aliases = datatypes.NewJSONSlice(append([]string{}, p.Aliases...))
	m.OwnerID = p.OwnerID
	m.CleaningCost = p.CleaningCost
	m.CheckInFee = p.CheckInFee
	m.Commission = p.Commission
	m.TeamPayment = p.TeamPayment
	m.MonthlyFixedCost = p.MonthlyFixedCost
	m.CleaningTeamID = p.CleaningTeamID
	m.Active = p.Active
	m.IsDemo = p.IsDemo
	m.DateTimeCreated = p.DateTimeCreated
	m.DateTimeUpdated = p.DateTimeUpdated
}
