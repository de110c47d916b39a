package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss for unknown key
	_, hit, err := c.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get should miss for unknown key")
	}

	// Set then hit
	want := []byte("artifact bytes")
	if err := c.Set(ctx, "graph1", want, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "graph1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get data = %q, want %q", got, want)
	}

	// Delete then miss
	if err := c.Delete(ctx, "graph1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "graph1")
	if hit {
		t.Error("Get should miss after Delete")
	}

	// Deleting an absent key is not an error
	if err := c.Delete(ctx, "graph1"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Already-expired entry is treated as a miss
	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "stale")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should miss")
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("keep"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("zero-TTL entry should hit")
	}
}

func TestFileCacheShardedLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "graph1", []byte("bytes"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Entries live in a two-hex-digit shard directory under the root.
	path := c.entryPath("graph1")
	if filepath.Dir(filepath.Dir(path)) != dir {
		t.Errorf("entry path %q not one shard level below %q", path, dir)
	}
	if len(filepath.Base(filepath.Dir(path))) != 2 {
		t.Errorf("shard dir %q should be two hex digits", filepath.Dir(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("entry file missing: %v", err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "broken", []byte("artifact"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	path := c.entryPath("broken")
	if err := os.WriteFile(path, []byte("{garbage"), 0644); err != nil {
		t.Fatalf("corrupt entry: %v", err)
	}

	// A corrupt entry reads as a miss and is removed.
	_, hit, err := c.Get(ctx, "broken")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("corrupt entry should miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed on read")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	graphData := []byte(`{"nodes":[0,1]}`)

	// Determinism for identical inputs
	k1 := ArtifactKey(graphData, "png", 1.0, 10)
	k2 := ArtifactKey(graphData, "png", 1.0, 10)
	if k1 != k2 {
		t.Error("ArtifactKey should be deterministic")
	}

	// Any option change produces a distinct key
	if k1 == ArtifactKey(graphData, "svg", 1.0, 10) {
		t.Error("format change should produce a different key")
	}
	if k1 == ArtifactKey(graphData, "png", 2.0, 10) {
		t.Error("thickness change should produce a different key")
	}
	if k1 == ArtifactKey([]byte(`{"nodes":[0,2]}`), "png", 1.0, 10) {
		t.Error("graph change should produce a different key")
	}

	// Key must not mutate the caller's graph bytes
	before := string(graphData)
	_ = ArtifactKey(graphData, "png", 1.0, 10)
	if string(graphData) != before {
		t.Error("ArtifactKey mutated input bytes")
	}
}
