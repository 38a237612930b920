package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lk16/reversi/internal/engine"
)

const (
	defaultMaxDepth       = 10
	defaultSearchDepth    = 6
	defaultSearchCacheTTL = 24 * time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool

	// RedisURL is optional, the search cache is disabled when it is empty.
	RedisURL string

	// PostgresURL is optional, game storage is disabled when it is empty.
	PostgresURL string

	Search SearchConfig
}

// SearchConfig limits the searches the server runs.
type SearchConfig struct {
	DefaultDepth int
	MaxDepth     int
	CacheTTL     time.Duration
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		BasicAuthUsername: getEnvMust("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("REVERSI_BASIC_AUTH_PASS"),
		Token:             getEnvMust("REVERSI_TOKEN"),
		Prefork:           getEnvMustBool("REVERSI_PREFORK"),
		RedisURL:          os.Getenv("REVERSI_REDIS_URL"),
		PostgresURL:       os.Getenv("REVERSI_POSTGRES_URL"),
		Search:            LoadSearchConfig(),
	}
}

// LoadSearchConfig loads the search limits, falling back to defaults.
func LoadSearchConfig() SearchConfig {
	cfg := SearchConfig{
		DefaultDepth: getEnvInt("REVERSI_DEFAULT_DEPTH", defaultSearchDepth),
		MaxDepth:     getEnvInt("REVERSI_MAX_DEPTH", defaultMaxDepth),
		CacheTTL:     getEnvDuration("REVERSI_SEARCH_CACHE_TTL", defaultSearchCacheTTL),
	}

	if cfg.MaxDepth > engine.MaxDepth {
		slog.Warn("Max depth is capped by the engine", "max", cfg.MaxDepth, "engine_max", engine.MaxDepth)
		cfg.MaxDepth = engine.MaxDepth
	}

	if cfg.DefaultDepth < 1 || cfg.DefaultDepth > cfg.MaxDepth {
		slog.Error("Default depth must be between 1 and the max depth", "default", cfg.DefaultDepth, "max", cfg.MaxDepth)
		os.Exit(1)
	}

	return cfg
}

// DatabaseConfig is used by commands that only need postgres.
type DatabaseConfig struct {
	PostgresURL string
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		PostgresURL: getEnvMust("REVERSI_POSTGRES_URL"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvInt returns the environment variable as int, or fallback if it is not set.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

// getEnvDuration returns the environment variable as duration, or fallback if it is not set.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be a duration", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
