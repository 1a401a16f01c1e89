package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Cache backends
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// CacheSettings selects the cache backend used for sessions and statistics
type CacheSettings struct {
	Type       string        `yaml:"type" validate:"required,oneof=memory redis"`
	Addr       string        `yaml:"addr" validate:"required_if=Type redis"`
	Password   string        `yaml:"password"`
	DB         int           `yaml:"db" validate:"min=0,max=15"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

func (s *CacheSettings) applyDefaults() {
	if s.Type == "" {
		s.Type = CacheTypeMemory
	}
	if s.DefaultTTL == 0 {
		s.DefaultTTL = 5 * time.Minute
	}
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}
	return nil
}
