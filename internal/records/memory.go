package records

import (
	"context"
	"sync"
)

// InMemory is a Map kept in process memory. Values are stored and returned by
// copy, so V should be a value type.
type InMemory[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewInMemory creates an empty in-memory map.
func NewInMemory[K comparable, V any]() *InMemory[K, V] {
	return &InMemory[K, V]{entries: make(map[K]V)}
}

func (m *InMemory[K, V]) Get(_ context.Context, key K) (V, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *InMemory[K, V]) Put(_ context.Context, key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *InMemory[K, V]) Delete(_ context.Context, key K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Len returns the number of stored records.
func (m *InMemory[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
