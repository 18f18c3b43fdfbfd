package store

import "sync"

// Store is a flat string key-value store.
type Store interface {
	// Get returns the value of the key and false if the key is absent.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

var _ Store = &MemStore{}

// MemStore is in-memory Store.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemStore returns new instance of the MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]string),
	}
}

// Get returns the value of the key.
func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

// Set sets the value of the key.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes the key.
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Close is no-op for the MemStore.
func (s *MemStore) Close() error {
	return nil
}
