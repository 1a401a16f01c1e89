package validators

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with the custom tags registered
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		_ = instance.RegisterValidation("nif", NIFValidation)
	})
	return instance
}

// ValidateStruct validates s and wraps every field failure into apperrors.ErrValidation
func ValidateStruct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, messages)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// Invalid builds a validation error with a formatted message
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
