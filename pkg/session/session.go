// Package session manages planning sessions for serve mode.
//
// A session wraps one Planner behind a mutex so concurrent HTTP requests
// against the same wall serialize their placements. The in-memory
// Registry owns the live planners; a SnapshotStore (Redis-backed in
// production, in-memory for tests) additionally keeps the latest
// telemetry snapshot of every session so dashboards can read build
// state without touching a live planner.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// DefaultTTL is how long an idle session's snapshot is kept.
const DefaultTTL = 24 * time.Hour

// Session is one live planning session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	planner *plan.Planner
}

// With runs fn while holding the session lock. All reads and writes of
// the planner go through here; the planner itself is not safe for
// concurrent use.
func (s *Session) With(fn func(p *plan.Planner)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.planner)
}

// Telemetry snapshots the session's wall under the session lock.
func (s *Session) Telemetry() wall.Telemetry {
	var t wall.Telemetry
	s.With(func(p *plan.Planner) { t = p.Telemetry() })
	return t
}

// Registry holds the live sessions of one server process.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session around the given planner and assigns
// it an id.
func (r *Registry) Create(p *plan.Planner) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		planner:   p,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// IDs returns the ids of all live sessions.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
