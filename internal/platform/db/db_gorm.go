// Package db opens the application's relational database connection.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "products_api/internal/feature/auth/domain/entity"
	productentity "products_api/internal/feature/product/domain/entity"
)

const (
	connectDeadline = 60 * time.Second
	connectBackoff  = 3 * time.Second
)

// Open connects to Postgres with the given DSN, retrying until the deadline.
// When runMigrations is true the schema is auto-migrated before returning.
// TranslateError is enabled so adapters can match gorm sentinel errors
// (ErrDuplicatedKey etc.) regardless of driver.
func Open(dsn string, runMigrations bool) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", connectDeadline, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(connectBackoff)
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&productentity.Product{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
