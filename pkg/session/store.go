package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// SnapshotStore persists the latest telemetry snapshot per session.
// Snapshots are advisory: losing one never loses build state, since the
// live planner in the Registry is the source of truth.
type SnapshotStore interface {
	// Save stores the snapshot for a session, replacing any previous one.
	Save(ctx context.Context, sessionID string, t wall.Telemetry) error

	// Load retrieves the snapshot for a session.
	Load(ctx context.Context, sessionID string) (wall.Telemetry, error)

	// Delete removes a session's snapshot.
	Delete(ctx context.Context, sessionID string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// In-memory store
// =============================================================================

// MemoryStore keeps snapshots in process memory. Used for tests and
// single-instance serve mode without Redis.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]wall.Telemetry
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]wall.Telemetry)}
}

// Save stores the snapshot for a session.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, t wall.Telemetry) error {
	s.mu.Lock()
	s.snapshots[sessionID] = t
	s.mu.Unlock()
	return nil
}

// Load retrieves the snapshot for a session.
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (wall.Telemetry, error) {
	s.mu.RLock()
	t, ok := s.snapshots[sessionID]
	s.mu.RUnlock()
	if !ok {
		return wall.Telemetry{}, errors.New(errors.ErrCodeSessionNotFound,
			"no snapshot for session %q", sessionID)
	}
	return t, nil
}

// Delete removes a session's snapshot.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.snapshots, sessionID)
	s.mu.Unlock()
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

var _ SnapshotStore = (*MemoryStore)(nil)

// =============================================================================
// Redis store
// =============================================================================

// RedisConfig configures the Redis-backed snapshot store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string

	// Password is the Redis password (empty for no auth).
	Password string

	// DB is the Redis database number.
	DB int

	// TTL is how long a snapshot lives without being refreshed.
	// Zero selects DefaultTTL.
	TTL time.Duration
}

// RedisStore persists snapshots in Redis so multiple server instances
// can read the same sessions.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"failed to connect to Redis at %s", cfg.Addr)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// key namespaces snapshot entries in Redis.
func (s *RedisStore) key(sessionID string) string {
	return "masonry:session:" + sessionID
}

// Save stores the snapshot for a session, refreshing its TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, t wall.Telemetry) error {
	data, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode snapshot")
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to save snapshot")
	}
	return nil
}

// Load retrieves the snapshot for a session.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (wall.Telemetry, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return wall.Telemetry{}, errors.New(errors.ErrCodeSessionNotFound,
			"no snapshot for session %q", sessionID)
	}
	if err != nil {
		return wall.Telemetry{}, errors.Wrap(errors.ErrCodeInternal, err, "failed to load snapshot")
	}

	var t wall.Telemetry
	if err := json.Unmarshal(data, &t); err != nil {
		return wall.Telemetry{}, errors.Wrap(errors.ErrCodeInternal, err, "corrupt snapshot")
	}
	return t, nil
}

// Delete removes a session's snapshot.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to delete snapshot")
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

var _ SnapshotStore = (*RedisStore)(nil)
