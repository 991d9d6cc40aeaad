package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath     string
	APIPort    string
	ContentDir string

	// SearchDefaultLimit is the page size used when a search request does
	// not set one.
	SearchDefaultLimit int

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config
// struct. It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it is loaded
// automatically; variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory first

	// Walk up a few levels looking for a project-root .env.
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:     getEnv("DB_PATH", "./data/planwell.db"),
		APIPort:    getEnv("API_PORT", "9000"),
		ContentDir: getEnv("CONTENT_DIR", ""),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
	}

	limitStr := getEnv("SEARCH_DEFAULT_LIMIT", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return nil, fmt.Errorf("SEARCH_DEFAULT_LIMIT must be a valid integer: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("SEARCH_DEFAULT_LIMIT must be greater than 0")
	}
	cfg.SearchDefaultLimit = limit

	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json")
	}

	// Create the data directory if it doesn't exist (for the DB file).
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
