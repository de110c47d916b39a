// Package cache stores rendered artifacts so identical graph/option inputs
// skip the Graphviz pass on subsequent runs.
//
// Keys are content hashes of the serialized graph plus its render options,
// so a changed seed, format, or figure size never collides with an earlier
// render. Two implementations are provided: [FileCache] for CLI usage and
// [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact caching backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
