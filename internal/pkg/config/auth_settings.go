package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures token issuance and session lifetime
type AuthSettings struct {
	AccessTokenSecret  string        `yaml:"access_token_secret" validate:"required,min=16"`
	RefreshTokenSecret string        `yaml:"refresh_token_secret" validate:"required,min=16,nefield=AccessTokenSecret"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl" validate:"required"`
	RefreshTokenTTL    time.Duration `yaml:"refresh_token_ttl" validate:"required,gtfield=AccessTokenTTL"`
	Issuer             string        `yaml:"issuer" validate:"required"`
}

func (s *AuthSettings) applyDefaults() {
	if s.AccessTokenTTL == 0 {
		s.AccessTokenTTL = 15 * time.Minute
	}
	if s.RefreshTokenTTL == 0 {
		s.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if s.Issuer == "" {
		s.Issuer = "maria-faz"
	}
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}
