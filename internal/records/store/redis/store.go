// Package redis persists record maps in Redis so several instances can share
// them. Each record is one string key holding the JSON-encoded value.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "records:"

// Key is the constraint for record keys: comparable and stable as text.
type Key interface {
	comparable
	String() string
}

// Map stores one schema's records under "records:<schema>:<key>".
type Map[K Key, V any] struct {
	client redis.Cmdable
	schema string
}

// NewMap returns the record map for schema.
func NewMap[K Key, V any](client redis.Cmdable, schema string) *Map[K, V] {
	return &Map[K, V]{client: client, schema: schema}
}

func (m *Map[K, V]) key(k K) string {
	return keyPrefix + m.schema + ":" + k.String()
}

func (m *Map[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V
	data, err := m.client.Get(ctx, m.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("get %s record: %w", m.schema, err)
	}

	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, false, fmt.Errorf("decode %s record: %w", m.schema, err)
	}
	return value, true, nil
}

func (m *Map[K, V]) Put(ctx context.Context, key K, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", m.schema, err)
	}
	if err := m.client.Set(ctx, m.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("set %s record: %w", m.schema, err)
	}
	return nil
}

func (m *Map[K, V]) Delete(ctx context.Context, key K) error {
	if err := m.client.Del(ctx, m.key(key)).Err(); err != nil {
		return fmt.Errorf("delete %s record: %w", m.schema, err)
	}
	return nil
}
