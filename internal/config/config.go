package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, sourced from a .env file when
// present and the process environment otherwise.
type Config struct {
	Port         string
	DatabasePath string
	LogLevel     slog.Level
}

// Load reads configuration, falling back to defaults for anything unset.
func Load() *Config {
	// A missing .env file is fine; plain environment variables still apply.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "autoshop.db"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
