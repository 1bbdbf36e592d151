// Package dbtest opens throwaway in-memory SQLite databases migrated with
// the full schema, for tests of packages that need a real store.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/purchasing/config"
	"github.com/purchasing/database"
	"gorm.io/gorm"
)

var seq atomic.Int64

// New returns a migrated database private to the calling test.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, seq.Add(1)),
	}

	db, err := database.Open(cfg)
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := database.AutoMigrate(db, ""); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}
	return db
}
