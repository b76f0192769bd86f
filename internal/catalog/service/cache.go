package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"maatwerk_backend/internal/catalog/domain"
)

const cacheKey = "catalog:v1"

// Cache is a redis-backed read-through cache for the catalog document.
// The catalog is fetched once per builder session, so a short TTL keeps
// authored changes visible without hammering the database.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a catalog cache. A nil client disables caching.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached catalog, reporting whether one was present.
func (c *Cache) Get(ctx context.Context) (domain.Catalog, bool) {
	if c == nil || c.client == nil {
		return domain.Catalog{}, false
	}

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return domain.Catalog{}, false
	}

	var cat domain.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return domain.Catalog{}, false
	}
	return cat, true
}

// Set stores the catalog with the configured TTL. Failures are returned so
// the caller can log them; the service never treats them as fatal.
func (c *Cache) Set(ctx context.Context, cat domain.Catalog) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(cat)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, data, c.ttl).Err()
}

// Invalidate drops the cached document (called after admin writes).
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Del(ctx, cacheKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
