// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	GoldPrice GoldPriceConfig
	Scheduler SchedulerConfig
	Sentry    SentryConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host             string
	Port             int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	Environment      string
	LogLevel         string
	ImportRateLimit  int
	ImportRateWindow time.Duration
}

// DatabaseConfig holds the snapshot store configuration.
// The sqlite driver keeps the ledger in a local file; postgres uses URL.
type DatabaseConfig struct {
	Driver          string
	Path            string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// GoldPriceConfig holds the gold price source configuration.
// An empty URL disables automatic refreshes.
type GoldPriceConfig struct {
	URL          string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	CacheTTL     time.Duration
}

// SchedulerConfig holds the automatic rollover configuration.
type SchedulerConfig struct {
	AutoRollover bool
	RolloverCron string
}

// SentryConfig holds error reporting configuration.
type SentryConfig struct {
	DSN string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             getEnv("SERVER_HOST", "127.0.0.1"),
			Port:             getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:      getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:      getEnv("ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			ImportRateLimit:  getEnvAsInt("IMPORT_RATE_LIMIT", 5),
			ImportRateWindow: getEnvAsDuration("IMPORT_RATE_WINDOW", time.Minute),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			Path:            getEnv("DB_PATH", "budget-ledger.db"),
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		GoldPrice: GoldPriceConfig{
			URL:          getEnv("GOLD_PRICE_URL", ""),
			Timeout:      getEnvAsDuration("GOLD_PRICE_TIMEOUT", 10*time.Second),
			MaxRetries:   getEnvAsInt("GOLD_PRICE_MAX_RETRIES", 3),
			RetryWaitMin: getEnvAsDuration("GOLD_PRICE_RETRY_WAIT_MIN", 500*time.Millisecond),
			RetryWaitMax: getEnvAsDuration("GOLD_PRICE_RETRY_WAIT_MAX", 5*time.Second),
			CacheTTL:     getEnvAsDuration("GOLD_PRICE_CACHE_TTL", 15*time.Minute),
		},
		Scheduler: SchedulerConfig{
			AutoRollover: getEnvAsBool("AUTO_ROLLOVER", true),
			RolloverCron: getEnv("ROLLOVER_CRON", "5 0 1 * *"),
		},
		Sentry: SentryConfig{
			DSN: getEnv("SENTRY_DSN", ""),
		},
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("SERVER_PORT %d out of range", c.Server.Port))
	}
	if c.Server.ImportRateLimit <= 0 {
		problems = append(problems, "IMPORT_RATE_LIMIT must be positive")
	}
	if c.Server.ImportRateWindow <= 0 {
		problems = append(problems, "IMPORT_RATE_WINDOW must be positive")
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			problems = append(problems, "DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			problems = append(problems, "DATABASE_URL is required for the postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	if c.GoldPrice.MaxRetries < 0 {
		problems = append(problems, "GOLD_PRICE_MAX_RETRIES must not be negative")
	}
	if c.GoldPrice.RetryWaitMin > c.GoldPrice.RetryWaitMax {
		problems = append(problems, "GOLD_PRICE_RETRY_WAIT_MIN exceeds GOLD_PRICE_RETRY_WAIT_MAX")
	}

	if c.Scheduler.AutoRollover {
		if _, err := cron.ParseStandard(c.Scheduler.RolloverCron); err != nil {
			problems = append(problems, fmt.Sprintf("invalid ROLLOVER_CRON %q: %v", c.Scheduler.RolloverCron, err))
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
