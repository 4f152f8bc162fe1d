package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

// Config stores runtime configuration for the scraper.
type Config struct {
	ServiceName string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	BaseURL        string
	Headless       bool
	NavTimeout     time.Duration
	MaxPoliteDelay time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	headless, err := strconv.ParseBool(getEnv("SCRAPER_HEADLESS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_HEADLESS: %w", err)
	}

	navTimeout, err := time.ParseDuration(getEnv("SCRAPER_NAV_TIMEOUT", "45s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_NAV_TIMEOUT: %w", err)
	}
	if navTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_NAV_TIMEOUT must be > 0")
	}

	maxPoliteDelay, err := time.ParseDuration(getEnv("SCRAPER_MAX_POLITE_DELAY", "6s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_MAX_POLITE_DELAY: %w", err)
	}
	if maxPoliteDelay < 0 {
		return Config{}, fmt.Errorf("SCRAPER_MAX_POLITE_DELAY cannot be negative")
	}

	cfg := Config{
		ServiceName:    getEnv("APP_SERVICE_NAME", "nrl-scraper"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "nrl"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		BaseURL:        strings.TrimRight(getEnv("SCRAPER_BASE_URL", "https://www.nrl.com"), "/"),
		Headless:       headless,
		NavTimeout:     navTimeout,
		MaxPoliteDelay: maxPoliteDelay,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_NAME cannot be empty")
	}

	return cfg, nil
}

// DSN assembles the Postgres connection string from the DB_* pieces.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}

	query := url.Values{}
	if c.DBSSLMode != "" {
		query.Set("sslmode", c.DBSSLMode)
	}
	u.RawQuery = query.Encode()

	return u.String()
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
