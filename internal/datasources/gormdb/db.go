package gormdb

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	sqlitePrefix   = "sqlite://"
	postgresPrefix = "postgres://"
)

// Open connects to the database named by url, which must start with sqlite:// or postgres://.
func Open(url string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(url, postgresPrefix):
		dialector = postgres.Open(url)
	case strings.HasPrefix(url, sqlitePrefix):
		dialector = sqlite.Open(strings.TrimPrefix(url, sqlitePrefix))
	default:
		return nil, fmt.Errorf("unsupported database url [%s]: must start with %s or %s", url, postgresPrefix, sqlitePrefix)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}
