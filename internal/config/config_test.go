package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "ws://localhost:8000/rpc", cfg.DBURL)
	assert.Equal(t, "villa", cfg.DBNamespace)
	assert.Equal(t, ProviderOpenAI, cfg.OracleProvider)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.OracleBaseURL)
	assert.Equal(t, "deepseek-chat", cfg.OracleModel)
	assert.Equal(t, 45*time.Second, cfg.OracleTimeout)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VILLA_DB_URL", "ws://db.internal:9000/rpc")
	t.Setenv("VILLA_ORACLE_PROVIDER", ProviderOllama)
	t.Setenv("VILLA_ORACLE_TIMEOUT", "90s")
	t.Setenv("VILLA_CRON_SECRET", "hunter2")
	t.Setenv("VILLA_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "ws://db.internal:9000/rpc", cfg.DBURL)
	assert.Equal(t, ProviderOllama, cfg.OracleProvider)
	assert.Equal(t, 90*time.Second, cfg.OracleTimeout)
	assert.Equal(t, "hunter2", cfg.CronSecret)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("VILLA_ORACLE_TIMEOUT", "soon")
	assert.Equal(t, 45*time.Second, Load().OracleTimeout)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}
