// Package migration applies the SQL schema of the postgres preference backend.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Config points the runner at a migrations directory and a database
type Config struct {
	MigrationsPath string
	DatabaseURL    string
	Logger         *slog.Logger
}

// Runner applies or rolls back migrations
type Runner struct {
	path   string
	dbURL  string
	logger *slog.Logger
}

func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	path := cfg.MigrationsPath
	if path == "" {
		path = "migrations"
	}
	return &Runner{path: path, dbURL: cfg.DatabaseURL, logger: logger.With("component", "migration")}
}

// Up applies every pending migration. Nothing to do is not an error.
func (r *Runner) Up() error {
	return r.with(func(m *migrate.Migrate) error {
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("schema up to date")
			return nil
		}
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		r.logger.Info("migrations applied")
		return nil
	})
}

// Down rolls back the most recent migration.
func (r *Runner) Down() error {
	return r.with(func(m *migrate.Migrate) error {
		err := m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) || errors.Is(err, migrate.ErrNilVersion) {
			r.logger.Info("nothing to roll back")
			return nil
		}
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		r.logger.Info("last migration rolled back")
		return nil
	})
}

// Version reports the applied version; 0 when the schema is empty.
func (r *Runner) Version() (version uint, dirty bool, err error) {
	err = r.with(func(m *migrate.Migrate) error {
		v, d, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		if verr != nil {
			return fmt.Errorf("migrate version: %w", verr)
		}
		version, dirty = v, d
		return nil
	})
	return version, dirty, err
}

// EnsureSchema refuses a dirty schema and otherwise runs Up. serve calls
// it when the postgres backend is selected.
func (r *Runner) EnsureSchema() error {
	version, dirty, err := r.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("schema dirty at version %d, fix it with migrate down", version)
	}
	return r.Up()
}

func (r *Runner) with(fn func(*migrate.Migrate) error) error {
	db, err := sql.Open("postgres", r.dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("postgres driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+r.path, "postgres", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("load migrations from %s: %w", r.path, err)
	}
	defer m.Close()
	return fn(m)
}
