package kvstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
)

// MemoryStore is a process local KeyValueStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty store, optionally seeded with values.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

// Ensure MemoryStore implements the KeyValueStore interface
var _ portsrepo.KeyValueStore = (*MemoryStore)(nil)

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
