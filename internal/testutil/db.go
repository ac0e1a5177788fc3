package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/plateful/restaurant-admin/internal/db"
)

// NewTestDB opens an in-memory sqlite database with the full schema
// migrated. One connection only: each :memory: connection would
// otherwise get its own empty database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
