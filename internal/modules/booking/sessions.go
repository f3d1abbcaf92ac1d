// README: In-memory booking sessions with TTL sweeping.
package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore holds open drafts keyed by session ID. Drafts live in
// process memory only: a session is one widget visit, and nothing survives
// close, hand-off, or restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	draft    *Draft
	lastSeen time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Open creates a fresh empty draft and returns its session ID.
func (s *SessionStore) Open() (string, *Draft) {
	id := uuid.NewString()
	d := newDraft()
	s.mu.Lock()
	s.sessions[id] = &sessionEntry{draft: d, lastSeen: s.now()}
	s.mu.Unlock()
	return id, d
}

// Get returns the draft for id and refreshes its idle timer.
func (s *SessionStore) Get(id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = s.now()
	return entry.draft, nil
}

// Close discards the session and its draft. Closing an unknown session is a
// no-op: the widget may close after its session was already swept.
func (s *SessionStore) Close(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) sweep() {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}

// RunSweeper evicts abandoned sessions until ctx is done.
func (s *SessionStore) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}
