package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"jobtrack/internal/config"
	"jobtrack/internal/model"
)

// Connect opens the database selected by cfg.DBDriver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	default:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		return db, nil
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.JobApplication{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// DropAll removes every application table. Used by the reset command
// and the RESET_DB boot flag.
func DropAll(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&model.JobApplication{}, &model.Profile{}, &model.User{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}
