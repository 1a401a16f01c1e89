package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache. Expired entries are swept every two TTLs.
func NewMemoryCache(defaultTTL time.Duration) Cache {
	return &memoryCache{store: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	value, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(value.([]byte), dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value of %s: %w", key, err)
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value of %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, data, ttl)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.store.Delete(key)
	}
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
	return nil
}

func (c *memoryCache) Close() error {
	c.store.Flush()
	return nil
}
