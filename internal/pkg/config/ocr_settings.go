package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// OCR providers
const (
	OCRProviderGemini     = "gemini"
	OCRProviderMistral    = "mistral"
	OCRProviderOpenRouter = "openrouter"
	OCRProviderNone       = "none"
)

// OCRSettings configures the remote document extraction provider
type OCRSettings struct {
	Provider      string        `yaml:"provider" validate:"required,oneof=gemini mistral openrouter none"`
	APIKey        string        `yaml:"api_key" validate:"required_unless=Provider none"`
	Model         string        `yaml:"model"`
	BaseURL       string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout       time.Duration `yaml:"timeout"`
	MinMatchScore float64       `yaml:"min_match_score" validate:"gte=0,lte=1"`
	MaxFileSize   int64         `yaml:"max_file_size" validate:"gte=0"`
}

func (s *OCRSettings) applyDefaults() {
	if s.Provider == "" {
		s.Provider = OCRProviderNone
	}
	if s.Timeout == 0 {
		s.Timeout = 60 * time.Second
	}
	if s.MinMatchScore == 0 {
		s.MinMatchScore = 0.6
	}
	if s.MaxFileSize == 0 {
		s.MaxFileSize = 10 << 20
	}
	if s.Model == "" {
		switch s.Provider {
		case OCRProviderGemini:
			s.Model = "gemini-1.5-flash"
		case OCRProviderMistral:
			s.Model = "mistral-ocr-latest"
		case OCRProviderOpenRouter:
			s.Model = "google/gemini-flash-1.5"
		}
	}
	if s.BaseURL == "" {
		switch s.Provider {
		case OCRProviderMistral:
			s.BaseURL = "https://api.mistral.ai"
		case OCRProviderOpenRouter:
			s.BaseURL = "https://openrouter.ai/api"
		}
	}
}

// Validate checks that all fields in OCRSettings are valid
func (s *OCRSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OCRSettings: %w", err)
	}
	return nil
}
