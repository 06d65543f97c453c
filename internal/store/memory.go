// internal/store/memory.go
//
// In-memory implementation of the KV interface. Used in development and
// tests, or when durability is not required; state is lost on restart.
// Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).

package store

import (
	"context"
	"sync"
)

// memory is a map-backed KV implementation.
type memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory constructs an in-memory KV store.
func NewMemory() KV {
	return &memory{values: make(map[string]string)}
}

func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
