// Package db opens and configures the relational store shared by all features.
package db

import (
	"errors"
	"fmt"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// ErrUnsupportedDriver is returned for a driver name that is not one of the Driver* constants.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds the connection settings.
type Config struct {
	Driver string
	// DSN, when set, is used verbatim and the discrete fields below are ignored.
	DSN string

	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName is a Cloud SQL instance; it takes precedence over Host/Port for MySQL.
	InstanceName string
	// Path is the SQLite database file.
	Path string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
	LogLevel        string
}

// Opener opens a gorm connection for a DSN. It is swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN assembles the driver-specific DSN from cfg.
func BuildDSN(cfg Config) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	switch cfg.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	case DriverSQLite:
		if cfg.Path == "" {
			return "file::memory:?cache=shared"
		}
		return cfg.Path
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}
}

// NewOpener returns an Opener for cfg.Driver.
// TranslateError is enabled so unique-index violations surface as gorm.ErrDuplicatedKey.
func NewOpener(cfg Config) (Opener, error) {
	var dial func(string) gorm.Dialector
	switch cfg.Driver {
	case DriverMySQL, "":
		dial = gmysql.Open
	case DriverPostgres:
		dial = postgres.Open
	case DriverSQLite:
		dial = sqlite.Open
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dial(dsn), gcfg)
	}, nil
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		time.Sleep(retryInterval)
	}
}

// Open connects using cfg and applies the pool settings.
func Open(cfg Config) (*gorm.DB, error) {
	open, err := NewOpener(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, open)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}

// Migrate creates or updates the tables of models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
