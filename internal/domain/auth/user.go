// Package auth models back-office users, their sessions and access tokens.
package auth

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
)

// Roles ordered from least to most privileged
const (
	RoleViewer  = "viewer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

var roleRank = map[string]int{
	RoleViewer:  1,
	RoleManager: 2,
	RoleAdmin:   3,
}

// User entity
type User struct {
	ID              string `validate:"required,uuid4"`
	Email           string `validate:"required,email,max=255"`
	Name            string `validate:"required,min=1,max=255"`
	PasswordHash    string `validate:"required"`
	Role            string `validate:"required,oneof=admin manager viewer"`
	Active          bool
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// RegisterInput carries the fields of a new user
type RegisterInput struct {
	Email    string `validate:"required,email,max=255"`
	Name     string `validate:"required,min=1,max=255"`
	Password string `validate:"required,min=8,max=72"`
	Role     string `validate:"omitempty,oneof=admin manager viewer"`
}

// Validate for validating RegisterInput struct
func (r *RegisterInput) Validate() error {
	return validators.ValidateStruct(r)
}

// Claims are the identity facts carried by an access token
type Claims struct {
	UserID    string
	Email     string
	Role      string
	SessionID string
}

// HasRole reports whether the claims grant at least role
func (c *Claims) HasRole(role string) bool {
	return roleRank[c.Role] >= roleRank[role]
}

// Session is a live login, keyed by its ID
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// TokenPair is returned by login and refresh
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}
