package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Retry controls how long Connect waits for the database to come up
type Retry struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry waits about a minute, long enough for a compose stack to start postgres
var DefaultRetry = Retry{Attempts: 30, Delay: 2 * time.Second}

// Connect opens a PostgreSQL pool and pings it, retrying until it answers or
// ctx is done
func Connect(ctx context.Context, dsn string, retry Retry, logger *zap.Logger) (*sql.DB, error) {
	var err error
	for i := 0; i < retry.Attempts; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				db.SetMaxOpenConns(25)
				db.SetMaxIdleConns(5)
				db.SetConnMaxLifetime(5 * time.Minute)
				return db, nil
			}
			db.Close()
		}

		logger.Warn("Database not ready",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retry.Delay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retry.Attempts, err)
}

// Migrate applies every pending migration found at source (a migrate URL such as file://migrations)
func Migrate(db *sql.DB, source string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}
	return nil
}

// Open connects and migrates in one step, as every binary does at startup
func Open(ctx context.Context, dsn, migrations string, logger *zap.Logger) (*sql.DB, error) {
	db, err := Connect(ctx, dsn, DefaultRetry, logger)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, migrations, logger); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
