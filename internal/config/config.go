package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from environment variables
// with an optional .env file.
type Config struct {
	Port          string
	DatasetPath   string
	DatasetDriver string // csv or sqlite
	DatasetTable  string // sqlite only
	LogLevel      slog.Level
	RateLimit     int // requests per minute per client IP
}

// Load reads the configuration, falling back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using system env vars")
	}

	return &Config{
		Port:          getEnv("PORT", ":8080"),
		DatasetPath:   getEnv("DATASET_PATH", "./data/listings.csv"),
		DatasetDriver: getEnv("DATASET_DRIVER", "csv"),
		DatasetTable:  getEnv("DATASET_TABLE", "listings"),
		LogLevel:      parseLevel(getEnv("LOG_LEVEL", "info")),
		RateLimit:     getEnvInt("RATE_LIMIT", 120),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch s {
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
