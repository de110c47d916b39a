package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKey generates a cache key for a rendered artifact.
// The key combines the serialized graph bytes with the render options so
// any change to either produces a distinct key.
func ArtifactKey(graphData []byte, parts ...any) string {
	data, _ := json.Marshal(parts)
	h := sha256.New()
	h.Write(graphData)
	h.Write(data)
	return fmt.Sprintf("artifact:%s", hex.EncodeToString(h.Sum(nil)))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
