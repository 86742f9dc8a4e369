package database

import (
	"database/sql"
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the embedded SQL migrations to a postgres store
type MigrationRunner struct {
	db         *sql.DB
	migrations fs.FS
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:         db,
		migrations: migrationsFS,
	}
}

// OpenPostgres opens a lib/pq connection used only for running migrations
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return db, nil
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	slog.Info("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		slog.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) sourceDriver() (source.Driver, error) {
	src, err := iofs.New(mr.migrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return src, nil
}

// RunMigrations executes all pending migrations. A dirty database is forced
// back to its recorded version first.
func (mr *MigrationRunner) RunMigrations() error {
	src, err := mr.sourceDriver()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !stderrors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if stderrors.Is(err, migrate.ErrNoChange) {
		slog.Info("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", "version", newVersion)
	return nil
}

// MigrationVersions lists the versions of the embedded migrations in order
func (mr *MigrationRunner) MigrationVersions() ([]uint, error) {
	src, err := mr.sourceDriver()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		return nil, fmt.Errorf("no migrations found: %w", err)
	}

	versions := []uint{version}
	for {
		version, err = src.Next(version)
		if stderrors.Is(err, fs.ErrNotExist) {
			return versions, nil
		}
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
}
