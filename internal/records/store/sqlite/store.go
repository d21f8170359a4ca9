// Package sqlite persists record maps in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Key is the constraint for record keys: comparable and stable as text.
type Key interface {
	comparable
	String() string
}

// Map stores one schema's records in the shared records table.
type Map[K Key, V any] struct {
	db     *sql.DB
	schema string
	now    func() time.Time
}

// NewMap returns the record map for schema. The table is created by the
// database migrations.
func NewMap[K Key, V any](db *sql.DB, schema string) *Map[K, V] {
	return &Map[K, V]{db: db, schema: schema, now: time.Now}
}

func (m *Map[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V
	var payload []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT payload FROM records WHERE schema_name = ? AND account_id = ?`,
		m.schema, key.String(),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("select %s record: %w", m.schema, err)
	}

	var value V
	if err := json.Unmarshal(payload, &value); err != nil {
		return zero, false, fmt.Errorf("decode %s record: %w", m.schema, err)
	}
	return value, true, nil
}

func (m *Map[K, V]) Put(ctx context.Context, key K, value V) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", m.schema, err)
	}
	_, err = m.db.ExecContext(ctx, `
		INSERT INTO records (schema_name, account_id, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (schema_name, account_id)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		m.schema, key.String(), payload, m.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert %s record: %w", m.schema, err)
	}
	return nil
}

func (m *Map[K, V]) Delete(ctx context.Context, key K) error {
	_, err := m.db.ExecContext(ctx,
		`DELETE FROM records WHERE schema_name = ? AND account_id = ?`,
		m.schema, key.String(),
	)
	if err != nil {
		return fmt.Errorf("delete %s record: %w", m.schema, err)
	}
	return nil
}

// Count returns the number of records stored for this schema.
func (m *Map[K, V]) Count(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE schema_name = ?`, m.schema,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s records: %w", m.schema, err)
	}
	return n, nil
}
