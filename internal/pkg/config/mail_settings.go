package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MailSettings configures outgoing SMTP delivery. Disabled mail only logs.
type MailSettings struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" validate:"omitempty,min=1,max=65535"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from" validate:"required_if=Enabled true,omitempty,email"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}
	return nil
}
