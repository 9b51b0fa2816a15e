// Package postgrestest opens migrated in-memory databases for repository and
// router tests.
package postgrestest

import (
	"testing"

	"campo-app-go/internal/db"
	"campo-app-go/internal/repository/postgres"
	"campo-app-go/pkg/logger"
	"gorm.io/gorm"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewSQLite(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB, postgres.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}
