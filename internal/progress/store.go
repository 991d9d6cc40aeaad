// Package progress persists user progress through checklists, tools, and
// calculators behind an explicit key-value port, and models multi-step
// interactions as an immutable state record with pure transitions. The
// rendering layer only displays a state and dispatches transitions; it never
// touches storage directly.
package progress

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("progress key not found")

// Store is the key-value persistence port for saved progress. Production
// deployments back it with browser storage at the UI boundary; tests and
// server-side use rely on MemoryStore.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// MemoryStore is an in-memory Store implementation, safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put stores value under key, replacing any existing value.
func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// NewSessionKey returns a fresh storage key for an anonymous progress
// session.
func NewSessionKey(slug string) string {
	return "progress:" + slug + ":" + uuid.New().String()
}
