package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/shopspring/decimal"
)

// CleaningTeamModel is the GORM database model for cleaning teams
type CleaningTeamModel struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)"`
	Name            string          `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Email           string          `gorm:"type:varchar(255)"`
	Phone           string          `gorm:"type:varchar(50)"`
	Rate            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status          string          `gorm:"not null;type:varchar(20)"`
	IsDemo          bool            `gorm:"not null;default:false;index"`
	DateTimeCreated time.Time       `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (CleaningTeamModel) TableName() string {
	return "cleaning_teams"
}

// ToDomain converts GORM model to domain entity
func (m *CleaningTeamModel) ToDomain() *cleaning.Team {
	return &cleaning.Team{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Rate:            m.Rate,
		Status:          m.Status,
		IsDemo:          m.IsDemo,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CleaningTeamModel) FromDomain(t *cleaning.Team) {
	m.ID = t.ID
	m.Name = t.Name
	m.Email = t.Email
	m.Phone = t.Phone
	m.Rate = t.Rate
	m.Status = t.Status
	m.IsDemo = t.IsDemo
	m.DateTimeCreated = t.DateTimeCreated
	m.DateTimeUpdated = t.DateTimeUpdated
}

// CleaningScheduleModel is the GORM database model for cleaning schedules
type CleaningScheduleModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	TeamID          string    `gorm:"not null;index;type:varchar(36)"`
	PropertyID      string    `gorm:"not null;index;type:varchar(36)"`
	ReservationID   *string   `gorm:"index;type:varchar(36)"`
	ScheduledDate   time.Time `gorm:"not null;index"`
	Status          string    `gorm:"not null;type:varchar(20)"`
	Notes           string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (CleaningScheduleModel) TableName() string {
	return "cleaning_schedules"
}

// ToDomain converts GORM model to domain entity
func (m *CleaningScheduleModel) ToDomain() *cleaning.Schedule {
	return &cleaning.Schedule{
		ID:              m.ID,
		TeamID:          m.TeamID,
		PropertyID:      m.PropertyID,
		ReservationID:   m.ReservationID,
		ScheduledDate:   m.ScheduledDate.UTC(),
		Status:          m.Status,
		Notes:           m.Notes,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CleaningScheduleModel) FromDomain(s *cleaning.Schedule) {
	m.ID = s.ID
	m.TeamID = s.TeamID
	m.PropertyID = s.PropertyID
	m.ReservationID = s.ReservationID
	m.ScheduledDate = s.ScheduledDate
	m.Status = s.Status
	m.Notes = s.Notes
	m.DateTimeCreated = s.DateTimeCreated
	m.DateTimeUpdated = s.DateTimeUpdated
}
