package memory

import (
	"context"
	"sync"

	"leavn/application/ports"
)

// KeyValueStore is a map-backed store. Used when no database path is
// configured, and by tests that need a clean store per case.
type KeyValueStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewKeyValueStore creates an empty in-memory store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{items: make(map[string][]byte)}
}

// Get returns the value for a key, or ports.ErrKeyNotFound.
func (s *KeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of the value under the key, overwriting any prior value.
func (s *KeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *KeyValueStore) Close() error {
	return nil
}
