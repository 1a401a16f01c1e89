package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/shopspring/decimal"
)

// QuotationModel is the GORM database model for quotations
type QuotationModel struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)"`
	QuotationNumber string          `gorm:"not null;uniqueIndex;type:varchar(32)"`
	ClientName      string          `gorm:"not null;index;type:varchar(255)"`
	ClientEmail     string          `gorm:"type:varchar(255)"`
	ClientPhone     string          `gorm:"type:varchar(50)"`
	PropertyAddress string          `gorm:"type:varchar(500)"`
	PropertyType    string          `gorm:"not null;type:varchar(20)"`
	PropertyArea    float64         `gorm:"not null"`
	ExteriorArea    float64         `gorm:"not null;default:0"`
	Bedrooms        int             `gorm:"not null;default:0"`
	Bathrooms       int             `gorm:"not null;default:0"`
	IsDuplex        bool            `gorm:"not null;default:false"`
	HasBBQ          bool            `gorm:"column:has_bbq;not null;default:false"`
	HasGlassGarden  bool            `gorm:"not null;default:false"`
	BasePrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AdditionalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"not null;index;type:varchar(20)"`
	IssueDate       time.Time       `gorm:"not null"`
	ValidUntil      time.Time       `gorm:"not null;index"`
	Notes           string          `gorm:"type:text"`
	PaymentTerms    string          `gorm:"type:varchar(500)"`
	DateTimeCreated time.Time       `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (QuotationModel) TableName() string {
	return "quotations"
}

// ToDomain converts GORM model to domain entity
func (m *QuotationModel) ToDomain() *quotations.Quotation {
	return &quotations.Quotation{
		ID:              m.ID,
		QuotationNumber: m.QuotationNumber,
		ClientName:      m.ClientName,
		ClientEmail:     m.ClientEmail,
		ClientPhone:     m.ClientPhone,
		PropertyAddress: m.PropertyAddress,
		PricingInput: quotations.PricingInput{
			PropertyType:   m.PropertyType,
			Area:           m.PropertyArea,
			ExteriorArea:   m.ExteriorArea,
			Bedrooms:       m.Bedrooms,
			Bathrooms:      m.Bathrooms,
			IsDuplex:       m.IsDuplex,
			HasBBQ:         m.HasBBQ,
			HasGlassGarden: m.HasGlassGarden,
		},
		Price: quotations.Price{
			BasePrice:       m.BasePrice,
			AdditionalPrice: m.AdditionalPrice,
			TotalPrice:      m.TotalPrice,
		},
		Status:          m.Status,
		IssueDate:       m.IssueDate.UTC(),
		ValidUntil:      m.ValidUntil.UTC(),
		Notes:           m.Notes,
		PaymentTerms:    m.PaymentTerms,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *QuotationModel) FromDomain(q *quotations.Quotation) {
	m.ID = q.ID
	m.QuotationNumber = q.QuotationNumber
	m.ClientName = q.ClientName
	m.ClientEmail = q.ClientEmail
	m.ClientPhone = q.ClientPhone
	m.PropertyAddress = q.PropertyAddress
	m.PropertyType = q.PropertyType
	m.PropertyArea = q.Area
	m.ExteriorArea = q.ExteriorArea
	m.Bedrooms = q.Bedrooms
	m.Bathrooms = q.Bathrooms
	m.IsDuplex = q.IsDuplex
	m.HasBBQ = q.HasBBQ
	m.HasGlassGarden = q.HasGlassGarden
	m.BasePrice = q.BasePrice
	m.AdditionalPrice = q.AdditionalPrice
	m.TotalPrice = q.TotalPrice
	m.Status = q.Status
	m.IssueDate = q.IssueDate
	m.ValidUntil = q.ValidUntil
	m.Notes = q.Notes
	m.PaymentTerms = q.PaymentTerms
	m.DateTimeCreated = q.DateTimeCreated
	m.DateTimeUpdated = q.DateTimeUpdated
}
