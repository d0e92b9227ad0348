package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks braik-api/internal/cache Cache

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a JSON-encoded value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes a cached value into dest. Returns false if the key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes keys from cache.
	Delete(ctx context.Context, keys ...string) error
	// Ping checks the connection.
	Ping(ctx context.Context) error
}

var _ Cache = (*Redis)(nil)
