package memory

import (
	"context"
	"sync"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// Store implements ports.DraftStore in memory. Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory draft store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Set stores a copy of the value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Get returns a copy so the caller cannot mutate stored bytes.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, flow.ErrDraftNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Delete removes the key.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
