package cache

import (
	"context"
	"time"
)

// Cache is the contract the repositories depend on. Implementations may be
// backed by Redis, Memcached or an in-memory map; a cache miss is not an
// error.
type Cache interface {
	// Get unmarshals the cached value for key into dest.
	// found=false means a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks connectivity.
	Ping(ctx context.Context) error
}
