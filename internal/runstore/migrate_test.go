package runstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mvnye29/F1-Qualifying-Performance-Analysis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NoneBackend(t *testing.T) {
	err := Migrate(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrate_SQLite(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Migrate to latest version
	err := Migrate(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Repeat runs are no-ops
	err = Migrate(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	err = Migrate(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)

	// Roll back to version 0, then back up
	err = Migrate(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	err = Migrate(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)
}

func TestMigrate_UnsupportedBackend(t *testing.T) {
	err := Migrate(schema.DatabaseBackend("oracle"), "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
