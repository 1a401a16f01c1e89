package models

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
)

// UserModel is the GORM database model for back-office users
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	Role            string    `gorm:"not null;type:varchar(20)"`
	Active          bool      `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *auth.User {
	return &auth.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		Active:          m.Active,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *auth.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Active = u.Active
	m.DateTimeCreated = u.DateTimeCreated
	m.DateTimeUpdated = u.DateTimeUpdated
}
