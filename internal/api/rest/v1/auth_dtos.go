package v1

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
)

// LoginRequest carries user credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Validate for validating RefreshRequest struct
func (r *RefreshRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// RegisterRequest is the body of user registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) toDomain() *auth.RegisterInput {
	return &auth.RegisterInput{Email: r.Email, Name: r.Name, Password: r.Password, Role: r.Role}
}

// UserResponse represents a user without credentials
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Active          bool      `json:"active"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func newUserResponse(u *auth.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		Active:          u.Active,
		DateTimeCreated: u.DateTimeCreated,
	}
}

// TokenResponse is returned by login and refresh. ExpiresIn is in seconds.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	TokenType    string        `json:"tokenType"`
	ExpiresIn    int64         `json:"expiresIn"`
	User         *UserResponse `json:"user,omitempty"`
}

func newTokenResponse(pair *auth.TokenPair, user *auth.User) TokenResponse {
	response := TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(pair.ExpiresIn / time.Second),
	}
	if user != nil {
		u := newUserResponse(user)
		response.User = &u
	}
	return response
}
