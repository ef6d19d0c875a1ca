// Package cache provides caching for expensive planner artifacts.
//
// Two things are worth caching in practice: generated bond layouts (the
// wild bond is randomized-looking but deterministic, so a layout for a
// given bond and wall size never changes) and rendered SVG snapshots in
// serve mode. Both are stored as opaque bytes behind the Cache
// interface, so callers can swap between an in-memory cache, a
// file-based cache for CLI usage, or disable caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// Cache is the storage interface for cached artifacts.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the planner's artifact types.
// Keys embed all inputs that affect the cached value, so a change in
// any input produces a different key.
type Keyer interface {
	// LayoutKey generates a key for a generated bond layout.
	LayoutKey(bond string, width, height float64) string

	// RenderKey generates a key for a rendered wall snapshot.
	RenderKey(bond string, width, height float64, placed, stride int) string
}

// artifactKey builds a key of the form "<kind>:<sha256 hex>" from the
// inputs that determine the artifact. The kind survives hashing so
// backends can tell layouts from renders (FileCache shards by it).
func artifactKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return kind + ":" + hex.EncodeToString(sum[:])
}

// ArtifactKind extracts the artifact kind from a key produced by a
// Keyer, ignoring any ScopedKeyer prefix. Keys of unknown shape report
// "misc".
func ArtifactKind(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 || parts[len(parts)-2] == "" {
		return "misc"
	}
	return parts[len(parts)-2]
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a generated bond layout.
func (k *DefaultKeyer) LayoutKey(bond string, width, height float64) string {
	return artifactKey("layout", bond, width, height)
}

// RenderKey generates a key for a rendered wall snapshot.
func (k *DefaultKeyer) RenderKey(bond string, width, height float64, placed, stride int) string {
	return artifactKey("render", bond, width, height, placed, stride)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Serve mode uses this to keep per-session render caches separate.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for a generated bond layout.
func (k *ScopedKeyer) LayoutKey(bond string, width, height float64) string {
	return k.prefix + k.inner.LayoutKey(bond, width, height)
}

// RenderKey generates a prefixed key for a rendered wall snapshot.
func (k *ScopedKeyer) RenderKey(bond string, width, height float64, placed, stride int) string {
	return k.prefix + k.inner.RenderKey(bond, width, height, placed, stride)
}
