package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/lk16/reversi/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}

func TestLoadSearchConfig(t *testing.T) {
	t.Setenv("REVERSI_DEFAULT_DEPTH", "")
	t.Setenv("REVERSI_MAX_DEPTH", "")
	t.Setenv("REVERSI_SEARCH_CACHE_TTL", "")

	require.Equal(t, SearchConfig{
		DefaultDepth: defaultSearchDepth,
		MaxDepth:     defaultMaxDepth,
		CacheTTL:     defaultSearchCacheTTL,
	}, LoadSearchConfig())

	t.Setenv("REVERSI_DEFAULT_DEPTH", "3")
	t.Setenv("REVERSI_MAX_DEPTH", "8")
	t.Setenv("REVERSI_SEARCH_CACHE_TTL", "90m")

	require.Equal(t, SearchConfig{
		DefaultDepth: 3,
		MaxDepth:     8,
		CacheTTL:     90 * time.Minute,
	}, LoadSearchConfig())

	t.Setenv("REVERSI_MAX_DEPTH", "100")
	require.Equal(t, engine.MaxDepth, LoadSearchConfig().MaxDepth)
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_BASIC_AUTH_USER", "user")
	t.Setenv("REVERSI_BASIC_AUTH_PASS", "pass")
	t.Setenv("REVERSI_TOKEN", "token")
	t.Setenv("REVERSI_PREFORK", "false")
	t.Setenv("REVERSI_REDIS_URL", "")
	t.Setenv("REVERSI_POSTGRES_URL", "postgres://localhost/reversi")

	cfg := LoadServerConfig()

	require.Equal(t, "localhost", cfg.ServerHost)
	require.Equal(t, "3000", cfg.ServerPort)
	require.Equal(t, "user", cfg.BasicAuthUsername)
	require.Equal(t, "pass", cfg.BasicAuthPassword)
	require.Equal(t, "token", cfg.Token)
	require.False(t, cfg.Prefork)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, "postgres://localhost/reversi", cfg.PostgresURL)
}
