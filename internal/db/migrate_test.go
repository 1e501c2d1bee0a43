package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second run must be a no-op.
	require.NoError(t, Migrate(database))
}

func TestMigrate_FetchLogSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO fetch_log
		(id, dataset_id, archive, description, dest_dir, archive_bytes, file_count, duration_ms, fetched_at)
		VALUES ('rec-1', 2, 'toptagging-short.zip', 'top tagging', '/data', 123, 4, 1500, '2026-08-23T10:00:00Z')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM fetch_log`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "manifest.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Ping())
}
