// Package records implements a single-record-per-key store over a host-owned map.
//
// Store adds lifecycle rules (create once, merge only existing, remove only
// existing) on top of a Map that the host persists. It performs no locking
// and no retries: callers serialize mutations on the same key, and every
// operation ends in success or a specific error.
package records

import (
	"context"
	"fmt"

	"recordkeeper/internal/sentinel"
)

var (
	// ErrDuplicateRecord is returned by Create when the key is already present.
	ErrDuplicateRecord = sentinel.ErrAlreadyExists
	// ErrRecordNotFound is returned when an operation requires an existing record.
	ErrRecordNotFound = sentinel.ErrNotFound
)

// Map is the storage handle injected by the host. Get reports presence with
// its bool result; errors are reserved for backend failures.
type Map[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool, error)
	Put(ctx context.Context, key K, value V) error
	Delete(ctx context.Context, key K) error
}

// Patch stages a partial update. Apply receives a copy of the stored value
// and returns the value to commit; any error leaves the stored value untouched.
type Patch[V any] interface {
	Apply(current V) (V, error)
}

// PatchFunc adapts a function to Patch.
type PatchFunc[V any] func(current V) (V, error)

func (f PatchFunc[V]) Apply(current V) (V, error) { return f(current) }

// Store is a RecordStore over a Map.
type Store[K comparable, V any] struct {
	m Map[K, V]
}

// New wraps m in a Store.
func New[K comparable, V any](m Map[K, V]) *Store[K, V] {
	return &Store[K, V]{m: m}
}

// Create inserts value under key, failing with ErrDuplicateRecord when key is present.
func (s *Store[K, V]) Create(ctx context.Context, key K, value V) error {
	exists, err := s.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("create record: %w", ErrDuplicateRecord)
	}
	if err := s.m.Put(ctx, key, value); err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// Read returns the value under key or ErrRecordNotFound.
func (s *Store[K, V]) Read(ctx context.Context, key K) (V, error) {
	value, ok, err := s.m.Get(ctx, key)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("read record: %w", err)
	}
	if !ok {
		var zero V
		return zero, fmt.Errorf("read record: %w", ErrRecordNotFound)
	}
	return value, nil
}

// Exists reports whether key holds a record.
func (s *Store[K, V]) Exists(ctx context.Context, key K) (bool, error) {
	_, ok, err := s.m.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("lookup record: %w", err)
	}
	return ok, nil
}

// Replace overwrites the value under key whether or not one exists.
func (s *Store[K, V]) Replace(ctx context.Context, key K, value V) error {
	if err := s.m.Put(ctx, key, value); err != nil {
		return fmt.Errorf("replace record: %w", err)
	}
	return nil
}

// Merge applies patch to the existing value under key and commits the result
// with a single Put. A patch error aborts before anything is written.
func (s *Store[K, V]) Merge(ctx context.Context, key K, patch Patch[V]) error {
	current, err := s.Read(ctx, key)
	if err != nil {
		return err
	}
	next, err := patch.Apply(current)
	if err != nil {
		return err
	}
	if err := s.m.Put(ctx, key, next); err != nil {
		return fmt.Errorf("merge record: %w", err)
	}
	return nil
}

// Remove deletes the value under key, failing with ErrRecordNotFound when absent.
func (s *Store[K, V]) Remove(ctx context.Context, key K) error {
	exists, err := s.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("remove record: %w", ErrRecordNotFound)
	}
	if err := s.m.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove record: %w", err)
	}
	return nil
}
