package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int
	DatabasePath    string
	SessionSecret   string
	SessionTTLHours int
	AppEnv          string // "development" or "production"
}

// Load loads configuration from a .env file (if present) and the
// environment, falling back to defaults suitable for development.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	ttl, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "720"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:      port,
		DatabasePath:    getEnv("DATABASE_PATH", "./warbler.db"),
		SessionSecret:   getEnv("SESSION_SECRET", "dev-secret-change-me"),
		SessionTTLHours: ttl,
		AppEnv:          getEnv("APP_ENV", "development"),
	}

	if cfg.IsProduction() && cfg.SessionSecret == "dev-secret-change-me" {
		return nil, errors.New("SESSION_SECRET must be set in production")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
