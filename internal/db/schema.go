package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. All application state lives in the
// collections table as whole-collection JSON documents, one row per
// collection key, so the storage backend stays swappable for a remote API.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates the schema if it doesn't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
