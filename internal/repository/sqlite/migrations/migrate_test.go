package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, "create_roster", first.Name)
	assert.Contains(t, first.Up, "CREATE TABLE IF NOT EXISTS employees")
	assert.Contains(t, first.Down, "DROP TABLE IF EXISTS assignments")
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	for _, table := range []string{"employees", "tasks", "assignments"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.True(t, applied[1])
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&count))
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), count)
}

func TestSchemaRejectsInvalidProgress(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.ExecContext(ctx,
		"INSERT INTO tasks (name, duration_hours, hours_worked, created_at) VALUES ('X', 0, 0, '2025-01-01T00:00:00Z')")
	assert.Error(t, err, "zero duration should violate the check constraint")

	_, err = db.ExecContext(ctx,
		"INSERT INTO tasks (name, duration_hours, hours_worked, created_at) VALUES ('X', 5, 6, '2025-01-01T00:00:00Z')")
	assert.Error(t, err, "worked hours above duration should violate the check constraint")
}

func TestExtractVersionAndName(t *testing.T) {
	assert.Equal(t, 12, extractVersion("000012_add_index.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
	assert.Equal(t, "add_index", extractName("000012_add_index.up.sql"))
}
