package testutils

import (
	"path/filepath"
	"testing"

	"resource-manager-backend/internal/database"

	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated sqlite database in a temp directory that is
// removed with the test
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(database.DriverSQLite, filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
