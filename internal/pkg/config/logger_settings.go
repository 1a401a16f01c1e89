package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log level and sink. Rotation fields apply to the file sink only.
type LoggerSettings struct {
	LogLevel   string `yaml:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `yaml:"log_type" validate:"required,oneof=console json file"`
	FilePath   string `yaml:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `yaml:"max_size" validate:"omitempty,min=1,max=100"`
	MaxBackups int    `yaml:"max_backups" validate:"omitempty,min=1,max=10"`
	MaxAge     int    `yaml:"max_age" validate:"omitempty,min=1,max=365"`
}

// Validate checks the level and sink, requiring rotation limits for the file sink
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}

	var errs []error
	if s.MaxSize == 0 {
		errs = append(errs, errors.New("max_size (MB) is required for the file logger"))
	}
	if s.MaxBackups == 0 {
		errs = append(errs, errors.New("max_backups is required for the file logger"))
	}
	if s.MaxAge == 0 {
		errs = append(errs, errors.New("max_age (days) is required for the file logger"))
	}
	return errors.Join(errs...)
}
