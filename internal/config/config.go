// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	// Persistence
	DataBackend  string // memory, file or sqlite
	DataDir      string // file backend: one JSON document per namespace
	SQLiteDBPath string

	// Dashboard
	UpcomingWindowDays int // horizon for the upcoming-statements widget
	UpcomingLimit      int
	RecentLimit        int

	// Logging
	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("DATA_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/myfinance.db"),

		UpcomingWindowDays: getEnvInt("UPCOMING_WINDOW_DAYS", 30),
		UpcomingLimit:      getEnvInt("UPCOMING_LIMIT", 3),
		RecentLimit:        getEnvInt("RECENT_LIMIT", 5),

		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// Validate checks the configuration, collecting every problem into one
// error.
func (c *Config) Validate() error {
	var problems []string

	switch c.DataBackend {
	case "memory":
	case "file":
		if c.DataDir == "" {
			problems = append(problems, "DATA_DIR cannot be empty when using the file backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty when using the sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be one of memory, file, sqlite", c.DataBackend))
	}

	if c.UpcomingWindowDays < 0 {
		problems = append(problems, fmt.Sprintf("invalid upcoming window %d: cannot be negative", c.UpcomingWindowDays))
	}
	if c.UpcomingLimit < 0 {
		problems = append(problems, fmt.Sprintf("invalid upcoming limit %d: cannot be negative", c.UpcomingLimit))
	}
	if c.RecentLimit < 0 {
		problems = append(problems, fmt.Sprintf("invalid recent limit %d: cannot be negative", c.RecentLimit))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
