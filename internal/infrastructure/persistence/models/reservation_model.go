package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/shopspring/decimal"
)

// ReservationModel is the GORM database model for reservations
type ReservationModel struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)"`
	PropertyID      string          `gorm:"not null;index;type:varchar(36)"`
	GuestName       string          `gorm:"not null;type:varchar(255)"`
	GuestEmail      string          `gorm:"type:varchar(255)"`
	GuestPhone      string          `gorm:"type:varchar(50)"`
	CheckInDate     time.Time       `gorm:"not null;index"`
	CheckOutDate    time.Time       `gorm:"not null;index"`
	NumGuests       int             `gorm:"not null;default:1"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"not null;index;type:varchar(20)"`
	Platform        string          `gorm:"not null;type:varchar(20)"`
	PlatformFee     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CleaningFee     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CheckInFee      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CommissionFee   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TeamPayment     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	NetAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Notes           string          `gorm:"type:text"`
	Source          string          `gorm:"not null;index;type:varchar(20)"`
	DateTimeCreated time.Time       `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts GORM model to domain entity
func (m *ReservationModel) ToDomain() *reservations.Reservation {
	return &reservations.Reservation{
		ID:              m.ID,
		PropertyID:      m.PropertyID,
		GuestName:       m.GuestName,
		GuestEmail:      m.GuestEmail,
		GuestPhone:      m.GuestPhone,
		CheckInDate:     m.CheckInDate.UTC(),
		CheckOutDate:    m.CheckOutDate.UTC(),
		NumGuests:       m.NumGuests,
		TotalAmount:     m.TotalAmount,
		Status:          m.Status,
		Platform:        m.Platform,
		PlatformFee:     m.PlatformFee,
		CleaningFee:     m.CleaningFee,
		CheckInFee:      m.CheckInFee,
		CommissionFee:   m.CommissionFee,
		TeamPayment:     m.TeamPayment,
		NetAmount:       m.NetAmount,
		Notes:           m.Notes,
		Source:          m.Source,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReservationModel) FromDomain(r *reservations.Reservation) {
	m.ID = r.ID
	m.PropertyID = r.PropertyID
	m.GuestName = r.GuestName
	m.GuestEmail = r.GuestEmail
	m.GuestPhone = r.GuestPhone
	m.CheckInDate = r.CheckInDate
	m.CheckOutDate = r.CheckOutDate
	m.NumGuests = r.NumGuests
	m.TotalAmount = r.TotalAmount
	m.Status = r.Status
	m.Platform = r.Platform
	m.PlatformFee = r.PlatformFee
	m.CleaningFee = r.CleaningFee
	m.CheckInFee = r.CheckInFee
	m.CommissionFee = r.CommissionFee
	m.TeamPayment = r.TeamPayment
	m.NetAmount = r.NetAmount
	m.Notes = r.Notes
	m.Source = r.Source
	m.DateTimeCreated = r.DateTimeCreated
	m.DateTimeUpdated = r.DateTimeUpdated
}
