// internal/storage/memory.go
//
// In-memory implementation of Store. Used in tests and when durability is
// not required; state is lost when the process restarts.
//
// Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
package storage

import (
	"context"
	"sync"
)

// memory is a map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards blobs map
	blobs map[string]string // keyed by record key
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{blobs: make(map[string]string)}
}

// Set adds or replaces the blob in the map.
func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}

// Get looks up a blob by key.
func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	return v, ok, nil
}
