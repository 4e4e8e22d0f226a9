package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"leadmend/internal/domain"
	"leadmend/internal/workflow"
)

// Store holds live import sessions in memory. Sessions have no persistence:
// they exist for the duration of one import and are evicted after the
// configured idle TTL, the server-side analogue of closing the modal.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	limits   Limits
	ttl      time.Duration
	sweep    time.Duration
}

// NewStore creates a session store. Zero TTL or sweep interval fall back to
// an hour and five minutes respectively.
func NewStore(limits Limits, ttl, sweep time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if sweep <= 0 {
		sweep = 5 * time.Minute
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		limits:   limits,
		ttl:      ttl,
		sweep:    sweep,
	}
}

// Create opens a new empty session for userID under the given workflow.
func (st *Store) Create(userID uuid.UUID, def *workflow.Definition) *Session {
	s := New(userID, def, st.limits)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the session with the given ID, scoped to its owner.
func (st *Store) Get(userID, id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok || s.UserID != userID {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Delete removes the session with the given ID, scoped to its owner.
func (st *Store) Delete(userID, id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok || s.UserID != userID {
		return domain.ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartJanitor runs the eviction loop until ctx is canceled. Sessions idle
// past the TTL are dropped; a session in the middle of a submission is left
// alone until its next sweep after completion.
func (st *Store) StartJanitor(ctx context.Context) {
	ticker := time.NewTicker(st.sweep)
	defer ticker.Stop()

	log.Printf("sessionStore: janitor started (ttl=%s, sweep=%s)", st.ttl, st.sweep)

	for {
		select {
		case <-ctx.Done():
			log.Printf("sessionStore: janitor stopped")
			return
		case <-ticker.C:
			st.evictExpired(time.Now())
		}
	}
}

func (st *Store) evictExpired(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, s := range st.sessions {
		if s.Phase() == domain.PhaseSubmitting {
			continue
		}
		if now.Sub(s.LastTouched()) > st.ttl {
			delete(st.sessions, id)
			log.Printf("sessionStore: evicted idle session %s", id)
		}
	}
}
