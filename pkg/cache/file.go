package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts on disk, one JSON-wrapped entry per
// key. Entries are sharded into subdirectories by key hash so a long-lived
// cache directory never accumulates thousands of files in one place.
type FileCache struct {
	dir string
}

// NewFileCache creates an artifact cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// artifactEntry is the on-disk shape of one cached render.
type artifactEntry struct {
	Artifact  []byte    `json:"artifact"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// expired reports whether the entry's TTL has passed. Entries without an
// expiry never expire.
func (e *artifactEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get returns the cached artifact for key. Expired or unreadable entries
// are removed and reported as misses, so a corrupted cache heals itself.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry artifactEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if entry.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores a rendered artifact under key. A ttl of zero keeps the entry
// until it is deleted or the cache is cleared.
func (c *FileCache) Set(ctx context.Context, key string, artifact []byte, ttl time.Duration) error {
	entry := artifactEntry{
		Artifact: artifact,
		StoredAt: time.Now(),
	}
	if ttl > 0 {
		entry.ExpiresAt = entry.StoredAt.Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry for key. A missing entry is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; entries persist between runs.
func (c *FileCache) Close() error {
	return nil
}

// entryPath maps a key to its shard directory and file. The first two hex
// digits of the key hash pick the shard.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
