package session

import (
	"context"
	"sync"
	"time"

	"github.com/classflow/gateway/internal/core/domain"
)

type memoryEntry struct {
	sess      domain.Session
	user      *domain.UserProfile
	expiresAt time.Time
}

// MemoryStore is an in-process SessionStore for tests and single-node
// development. Records are deep-copied on the way in and out so callers never
// share state with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()
	if !ok || (!e.expiresAt.IsZero() && time.Now().After(e.expiresAt)) {
		return nil, domain.ErrSessionNotFound
	}

	sess := e.sess
	if e.user != nil {
		u := *e.user
		sess.User = &u
	}
	return &sess, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	e := memoryEntry{sess: *sess}
	if sess.User != nil {
		u := *sess.User
		e.user = &u
		e.sess.User = nil
	}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.items[sess.ID] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}
