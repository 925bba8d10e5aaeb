package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Source returns the embedded migration files as a migrate source driver.
func Source() (source.Driver, error) {
	return iofs.New(files, "sql")
}

// Runner applies the embedded schema migrations to a Postgres database.
type Runner struct {
	db       *sql.DB
	logger   *slog.Logger
	migrator *migrate.Migrate
}

// NewRunner creates a new migration runner for db.
func NewRunner(db *sql.DB, logger *slog.Logger) *Runner {
	return &Runner{db: db, logger: logger}
}

func (r *Runner) init() error {
	if r.migrator != nil {
		return nil
	}
	driver, err := postgres.WithInstance(r.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres migration driver: %w", err)
	}
	src, err := Source()
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	migrator, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	r.migrator = migrator
	return nil
}

// Up runs all pending migrations. A dirty database is reported, not forced.
func (r *Runner) Up() error {
	if err := r.init(); err != nil {
		return err
	}
	if err := r.migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := r.migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		r.logger.Info("no migrations applied")
	case err != nil:
		return fmt.Errorf("failed to get migration version: %w", err)
	default:
		r.logger.Info("schema migrated", "version", version, "dirty", dirty)
	}
	return nil
}

// Down rolls back all migrations.
func (r *Runner) Down() error {
	if err := r.init(); err != nil {
		return err
	}
	if err := r.migrator.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Close frees the migrator. The postgres driver closes the *sql.DB it was
// given, so callers hand the runner a dedicated handle.
func (r *Runner) Close() error {
	if r.migrator == nil {
		return r.db.Close()
	}
	sourceErr, databaseErr := r.migrator.Close()
	if sourceErr != nil {
		return fmt.Errorf("error closing migrator source: %w", sourceErr)
	}
	if databaseErr != nil {
		return fmt.Errorf("error closing migrator database: %w", databaseErr)
	}
	return nil
}
