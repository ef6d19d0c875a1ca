package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache persists planner artifacts under a directory, one JSON file
// per entry. The CLI uses it for bond layouts, which are deterministic
// per bond and wall size and therefore never invalidated, only expired.
// Entries are grouped by artifact kind (layout/, render/, ...) so the
// cache directory stays inspectable and "cache clear" has an obvious
// shape to walk.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed and returns a
// cache rooted there.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk representation of one cached artifact.
type fileEntry struct {
	Kind      string    `json:"kind"`
	Artifact  []byte    `json:"artifact"`
	SavedAt   time.Time `json:"saved_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Get retrieves an artifact. Unreadable or expired entries are removed
// and reported as misses, never as errors.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores an artifact. A zero ttl stores it without expiry, which is
// what layouts use.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{
		Kind:     ArtifactKind(key),
		Artifact: data,
		SavedAt:  time.Now(),
	}
	if ttl > 0 {
		entry.ExpiresAt = entry.SavedAt.Add(ttl)
	}

	blob, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0644)
}

// Delete removes an artifact. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; entries stay on disk for the next run.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to <dir>/<kind>/<sha256(key)>.json. The digest keeps
// filenames uniform regardless of key shape; the kind subdirectory
// separates layouts from other artifacts.
func (c *FileCache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	name := hex.EncodeToString(sum[:]) + ".json"
	return filepath.Join(c.dir, ArtifactKind(key), name)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
