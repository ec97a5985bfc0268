package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration values.
type Config struct {
	ServerHost       string
	ServerPort       string
	ServerMode       string
	AppEnv           string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseURL      string
	LogLevel         string
	SessionSecret    string
	SessionLifetime  time.Duration
	SessionCookie    string
	SessionCleanup   time.Duration
	DefaultLocale    string
	PageSizeDefault  int
	PageCountDefault int
	ShutdownTimeout  time.Duration
}

// Load reads configuration exclusively from environment variables (optionally .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.ServerHost = getEnv("HOST", "0.0.0.0")
	cfg.ServerPort = getEnv("PORT", "8080")
	cfg.ServerMode = getEnv("GIN_MODE", "debug")
	cfg.AppEnv = getEnv("APP_ENV", "dev")

	// Database
	cfg.DatabaseHost = getEnv("DB_HOST", "localhost")
	cfg.DatabasePort = getEnv("DB_PORT", "3306")
	cfg.DatabaseUser = getEnv("DB_USER", "")
	cfg.DatabasePassword = getEnv("DB_PASSWORD", "")
	cfg.DatabaseName = getEnv("DB_NAME", "")
	if cfg.DatabaseUser == "" || cfg.DatabasePassword == "" || cfg.DatabaseName == "" {
		return nil, fmt.Errorf("missing required database env vars")
	}
	// Build DSN: user:pass@tcp(host:port)/dbname?parseTime=true
	cfg.DatabaseURL = fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		cfg.DatabaseUser, cfg.DatabasePassword,
		cfg.DatabaseHost, cfg.DatabasePort,
		cfg.DatabaseName,
	)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Sessions
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("missing SESSION_SECRET environment variable")
	}
	var err error
	if cfg.SessionLifetime, err = getDuration("SESSION_LIFETIME", "30m"); err != nil {
		return nil, err
	}
	if cfg.SessionCleanup, err = getDuration("SESSION_CLEANUP_INTERVAL", "10m"); err != nil {
		return nil, err
	}
	cfg.SessionCookie = getEnv("SESSION_COOKIE_NAME", "SESSION")

	// Messages
	cfg.DefaultLocale = getEnv("DEFAULT_LOCALE", "ko")

	// Paging
	if cfg.PageSizeDefault, err = getInt("PAGE_SIZE_DEFAULT", "10"); err != nil {
		return nil, err
	}
	if cfg.PageCountDefault, err = getInt("PAGE_COUNT_DEFAULT", "10"); err != nil {
		return nil, err
	}

	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// getEnv returns env var or default.
func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key, def string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
