package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the record mirror schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS modules (
		key        TEXT PRIMARY KEY
		           CHECK(key IN ('article','materials','colors','calendar')),
		tab_order  INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS module_records (
		module    TEXT NOT NULL REFERENCES modules(key) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		field_1   TEXT NOT NULL,
		field_2   TEXT NOT NULL,
		field_3   TEXT NOT NULL,
		field_4   TEXT NOT NULL,
		badge     TEXT NOT NULL
		          CHECK(badge IN ('info','warning','success')),
		PRIMARY KEY (module, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_module_records_module ON module_records(module, position)`,
}
