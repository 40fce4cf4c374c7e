package migration

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/interbanking/backend/internal/infrastructure/config"
)

func openSQLite(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dsn := config.SQLiteDSN(filepath.Join(t.TempDir(), "migrate.sqlite"))
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, dsn
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestSourceDir(t *testing.T) {
	dir, err := SourceDir(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dir)

	dir, err = SourceDir(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", dir)

	_, err = SourceDir("oracle")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLDriverName(t *testing.T) {
	name, err := SQLDriverName(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", name)

	_, err = SQLDriverName("")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	db, _ := openSQLite(t)
	_, err := New(db, "mysql", zap.NewNop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestMigrator_SQLiteLifecycle(t *testing.T) {
	db, dsn := openSQLite(t)

	m, err := New(db, config.DriverSQLite, zap.NewNop())
	require.NoError(t, err)

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	require.NoError(t, m.Up())
	version, _, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)

	// A second run is a no-op
	require.NoError(t, m.Up())

	require.NoError(t, m.Steps(-1))
	version, _, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	require.NoError(t, m.GoTo(2))
	require.NoError(t, m.Down())
	version, _, err = m.Version()
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, m.Close())

	// Verify through a fresh connection since the sqlite driver closes db.
	require.NoError(t, UpDSN(config.DriverSQLite, dsn, zap.NewNop()))
	check, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer check.Close()
	assert.True(t, tableExists(t, check, "companies"))
	assert.True(t, tableExists(t, check, "transfers"))
}

func TestMigrator_SQLiteEnforcesForeignKeys(t *testing.T) {
	_, dsn := openSQLite(t)
	require.NoError(t, UpDSN(config.DriverSQLite, dsn, zap.NewNop()))

	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO transfers (id, amount, company_id, debit_account, credit_account, created_at, updated_at)
		VALUES ('t-1', '10', 'missing', '123', '456', '2024-01-01 00:00:00', '2024-01-01 00:00:00')`)
	assert.Error(t, err)
}

func TestMigrator_WithPath(t *testing.T) {
	db, _ := openSQLite(t)
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "create notes", "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(mf.UpPath, []byte("CREATE TABLE notes (id INTEGER PRIMARY KEY);"), 0o644))
	require.NoError(t, os.WriteFile(mf.DownPath, []byte("DROP TABLE notes;"), 0o644))

	m, err := New(db, config.DriverSQLite, zap.NewNop(), WithPath(dir))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Up())
	version, _, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}
