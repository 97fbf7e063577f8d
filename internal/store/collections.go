// Package store is the persistence facade: four JSON collections stored
// under well-known keys, each read and written as a whole. It is the sole
// boundary between the application and storage.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Collection keys. They match the storage keys of the legacy client so an
// exported state dump stays readable across both.
const (
	keyProducts     = "sm_products"
	keyUsers        = "sm_users_list"
	keyRequisitions = "sm_requisitions"
	keyMovements    = "sm_movements"
)

// loadCollection reads a whole collection. A missing key is not an error
// and yields an empty collection; malformed stored JSON propagates.
func loadCollection[T any](ctx context.Context, db *sql.DB, key string) ([]T, error) {
	var raw string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE key = ?`, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding collection %s: %w", key, err)
	}
	return items, nil
}

// saveCollection overwrites a whole collection.
func saveCollection[T any](ctx context.Context, db *sql.DB, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", key, err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO collections (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", key, err)
	}
	return nil
}
