package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dmakerhq/dmaker/pkg/retry"
)

// New creates a new database connection using environment variables.
func New() (*gorm.DB, error) {
	cfg := LoadConfigFromEnv()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new database connection with custom configuration.
// Connection attempts are retried with backoff; unique-constraint errors
// are translated so repositories can match them with errors.Is.
func NewWithConfig(cfg Config) (*gorm.DB, error) {
	retryCfg := LoadRetryConfigFromEnv()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	})

	if err != nil {
		return nil, SanitizeError(err, cfg)
	}

	if err := SetupConnectionPool(db, DefaultPoolConfig()); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
