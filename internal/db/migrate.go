package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent and
// re-runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS fetch_log (
		id            TEXT PRIMARY KEY,
		dataset_id    INTEGER NOT NULL,
		archive       TEXT NOT NULL,
		description   TEXT NOT NULL,
		dest_dir      TEXT NOT NULL,
		archive_bytes INTEGER NOT NULL DEFAULT 0,
		file_count    INTEGER NOT NULL DEFAULT 0,
		duration_ms   INTEGER NOT NULL DEFAULT 0,
		fetched_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fetch_log_fetched ON fetch_log(fetched_at)`,
	`CREATE INDEX IF NOT EXISTS idx_fetch_log_dataset ON fetch_log(dataset_id)`,
}
