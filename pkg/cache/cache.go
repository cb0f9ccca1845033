package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache in front of slug lookups.
// Implementations: Redis (internal/infrastructure/cache) and the in-process
// Memory cache below, used when no Redis is configured and in tests.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the backing store is reachable.
	Ping(ctx context.Context) error
}
