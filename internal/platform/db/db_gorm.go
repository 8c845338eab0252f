// Package db opens the gorm connection pool for sqlite, MySQL or PostgreSQL.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"garden_backend/internal/platform/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	retryInterval = 3 * time.Second
)

// ErrUnknownDriver is returned for a DB_DRIVER other than sqlite, mysql or postgres.
var ErrUnknownDriver = errors.New("unknown database driver")

// Config describes how to reach the database.
type Config struct {
	Driver string
	// Path is the sqlite file, or ":memory:".
	Path         string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string

	RunMigrations   bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfigFromEnv reads Config from DB_* variables. The default is a local sqlite file.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:          strings.ToLower(config.String("DB_DRIVER", DriverSQLite)),
		Path:            config.String("DB_PATH", "garden.db"),
		User:            config.String("DB_USER", ""),
		Password:        config.String("DB_PASSWORD", ""),
		Name:            config.String("DB_NAME", ""),
		Host:            config.String("DB_HOST", "localhost"),
		Port:            config.String("DB_PORT", ""),
		SSLMode:         config.String("DB_SSLMODE", "disable"),
		InstanceName:    config.String("INSTANCE_CONNECTION_NAME", ""),
		RunMigrations:   config.Bool("RUN_MIGRATIONS", true),
		MaxOpenConns:    config.Int("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    config.Int("DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: time.Duration(config.Int("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
	}
}

// BuildDSN renders the connection string for cfg.Driver.
// For MySQL a Cloud SQL instance name takes precedence over host and port.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverMySQL:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, portOr(cfg.Port, "3306"), cfg.Name)
	case DriverPostgres:
		host := cfg.Host
		if cfg.InstanceName != "" {
			host = "/cloudsql/" + cfg.InstanceName
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			host, portOr(cfg.Port, "5432"), cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	default:
		if cfg.Path == ":memory:" {
			return cfg.Path
		}
		return "file:" + cfg.Path + "?_foreign_keys=on&_busy_timeout=5000"
	}
}

func portOr(port, def string) string {
	if port == "" {
		return def
	}
	return port
}

// Dialector returns the gorm dialector for driver.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		return gmysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener func(string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects with retries and applies the pool settings.
func Open(cfg Config, timeout time.Duration) (*gorm.DB, error) {
	if _, err := Dialector(cfg.Driver, ""); err != nil {
		return nil, err
	}
	opener := func(dsn string) (*gorm.DB, error) {
		d, _ := Dialector(cfg.Driver, dsn)
		return gorm.Open(d, &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		})
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, opener)
	if err != nil {
		return nil, err
	}
	if err := ConfigurePool(db, cfg); err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", cfg.Driver)
	return db, nil
}

// ConfigurePool sizes the connection pool. An in-memory sqlite database is
// private to its connection, so it is pinned to one.
func ConfigurePool(db *gorm.DB, cfg Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.Driver == DriverSQLite && cfg.Path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		return nil
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return nil
}

// Migrate creates or updates the tables of models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
