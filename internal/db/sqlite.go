package db

import (
	"fmt"

	"campo-app-go/pkg/logger"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewSQLite opens a CGO-free sqlite database. A single connection is used so
// that ":memory:" databases are shared by every query and writes serialize.
func NewSQLite(path string, log logger.Logger) (*gorm.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	log.Info("db: opening sqlite", "path", path)

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Info("db: connected", "driver", "sqlite")
	return gormDB, nil
}
