package cache

import (
	"context"
	"time"
)

// NullCache discards every write and misses every read. It backs the
// --no-cache flag and stands in when the cache directory is unavailable,
// so callers never need a nil check before cache operations.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get always misses.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the artifact.
func (*NullCache) Set(ctx context.Context, key string, artifact []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (*NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (*NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
