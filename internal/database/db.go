package database

import (
	"fmt"

	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens the backing store. The default driver is a local
// sqlite file, since the whole system is designed to run self-contained on
// one machine, but postgres can be selected via STORE_DRIVER for shared
// deployments.
func NewConnection(driver, dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return nil, err
	}

	return db, nil
}
