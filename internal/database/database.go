package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fioapi/internal/config"
	"fioapi/internal/models"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB is the store of the mock bank server
type DB struct {
	*gorm.DB
	driver string
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// New connects to the configured store and verifies the connection
func New(cfg *config.MockServerConfig) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DBDSN)
	case DriverPostgres:
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.DBDriver == DriverSQLite {
		// an in-memory database lives only as long as its connection
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: cfg.DBDriver}, nil
}

// NewPostgresWithConn wraps an existing postgres connection pool
func NewPostgresWithConn(conn *sql.DB) (*DB, error) {
	cfg := gormConfig(logger.Silent)
	cfg.DisableAutomaticPing = true

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &DB{DB: db, driver: DriverPostgres}, nil
}

// Driver returns the name of the underlying database driver
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.MockAccount{},
		&models.LedgerEntry{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// Initialize connects to the store and prepares its schema. Postgres gets the
// SQL migrations and falls back to AutoMigrate if they fail. SQLite always
// uses AutoMigrate.
func Initialize(cfg *config.MockServerConfig) (*DB, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == DriverPostgres {
		if err := runPostgresMigrations(cfg.DBDSN); err != nil {
			slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
			if err := db.AutoMigrate(); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	} else if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("database initialized", "driver", cfg.DBDriver)
	return db, nil
}

func runPostgresMigrations(dsn string) error {
	conn, err := OpenPostgres(dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	runner := NewMigrationRunner(conn)
	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	return runner.RunMigrations()
}
