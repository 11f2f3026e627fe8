package cache

import (
	"context"
	"time"
)

// Cache abstracts the Redis layer so repositories and services do not
// depend on a concrete client. Implementations live in
// internal/infrastructure/cache.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
