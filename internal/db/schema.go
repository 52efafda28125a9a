package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it through GetSchemaSQL() so they fail immediately with
// "no such column" when code and schema drift apart.
//
// When adding new columns or tables:
//  1. Add a migration to migrations
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Cached store records; position preserves source order
CREATE TABLE IF NOT EXISTS stores (
	position INTEGER PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	tel TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	district TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_stores_city ON stores(city);

-- One row per cache import
CREATE TABLE IF NOT EXISTS imports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	record_count INTEGER NOT NULL,
	imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema brings database up to the current schema.
// Fresh databases get SchemaSQL directly and are marked fully migrated;
// existing databases run pending migrations.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(database)
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := ensureVersionTable(database); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to mark migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema for tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
