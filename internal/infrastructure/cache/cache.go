package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
)

// Cache stores JSON-encoded values with a time to live
type Cache interface {
	// Get decodes the value of key into dest and reports whether it was present
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key. A zero ttl uses the default TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix removes every key starting with prefix
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// NewCache creates the cache selected by settings
func NewCache(ctx context.Context, settings *config.CacheSettings, logger logger.Logger) (Cache, error) {
	switch settings.Type {
	case config.CacheTypeRedis:
		return NewRedisCache(ctx, settings, logger)
	case config.CacheTypeMemory:
		return NewMemoryCache(settings.DefaultTTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}
