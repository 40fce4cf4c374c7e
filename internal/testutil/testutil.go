// Package testutil provides common test utilities for the interbanking backend.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/interbanking/backend/internal/infrastructure/config"
	"github.com/interbanking/backend/internal/infrastructure/migration"
	"github.com/interbanking/backend/internal/infrastructure/persistence"
)

// MockDB bundles a GORM connection backed by sqlmock.
type MockDB struct {
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	SQLDB *sql.DB
}

// NewMockDB opens GORM with the postgres dialector on top of sqlmock.
// Unmet expectations fail the test on cleanup.
func NewMockDB(t *testing.T) *MockDB {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err, "Failed to open gorm on sqlmock")

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return &MockDB{DB: gormDB, Mock: mock, SQLDB: sqlDB}
}

// NewSQLiteDatabase migrates a fresh sqlite file under t.TempDir and opens it.
func NewSQLiteDatabase(t *testing.T) *persistence.Database {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.sqlite"),
	}
	require.NoError(t, migration.UpDSN(cfg.Driver, cfg.DSN(), zap.NewNop()), "Failed to migrate sqlite")

	db, err := persistence.NewDatabase(cfg)
	require.NoError(t, err, "Failed to open sqlite")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewTestUUID returns a fresh random UUID string.
func NewTestUUID() string {
	return uuid.New().String()
}

// Context returns a context cancelled when the test ends.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// AssertEventually polls condition until it holds or timeout expires.
func AssertEventually(t *testing.T, condition func() bool, timeout, interval time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %s: %s", timeout, msg)
}
