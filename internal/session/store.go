package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a session is missing or expired.
var ErrNotFound = errors.New("session not found")

// Store holds the server-side session records keyed by session ID.
type Store interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (userID uint, err error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is an in-process session store, the default when Redis is not
// configured. Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

// Save records a session with a TTL.
func (s *MemoryStore) Save(_ context.Context, sessionID string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Lookup returns the user ID for a live session.
func (s *MemoryStore) Lookup(_ context.Context, sessionID string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
