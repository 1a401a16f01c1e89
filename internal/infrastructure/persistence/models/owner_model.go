package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
)

// OwnerModel is the GORM database model for owners
type OwnerModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Name            string    `gorm:"not null;index;type:varchar(255)"`
	Company         string    `gorm:"type:varchar(255)"`
	Address         string    `gorm:"type:varchar(500)"`
	TaxID           string    `gorm:"type:varchar(9)"`
	Email           string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(50)"`
	IsDemo          bool      `gorm:"not null;default:false;index"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (OwnerModel) TableName() string {
	return "owners"
}

// ToDomain converts GORM model to domain entity
func (m *OwnerModel) ToDomain() *owners.Owner {
	return &owners.Owner{
		ID:              m.ID,
		Name:            m.Name,
		Company:         m.Company,
		Address:         m.Address,
		TaxID:           m.TaxID,
		Email:           m.Email,
		Phone:           m.Phone,
		IsDemo:          m.IsDemo,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OwnerModel) FromDomain(o *owners.Owner) {
	m.ID = o.ID
	m.Name = o.Name
	m.Company = o.Company
	m.Address = o.Address
	m.TaxID = o.TaxID
	m.Email = o.Email
	m.Phone = o.Phone
	m.IsDemo = o.IsDemo
	m.DateTimeCreated = o.DateTimeCreated
	m.DateTimeUpdated = o.DateTimeUpdated
}
