// Package config loads configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Oracle provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Config holds all configuration values.
type Config struct {
	// SurrealDB connection
	DBURL       string
	DBNamespace string
	DBDatabase  string
	DBUser      string
	DBPass      string
	DBAuthLevel string

	// Decision oracle
	OracleProvider string
	OracleAPIKey   string
	OracleBaseURL  string
	OracleModel    string
	OracleTimeout  time.Duration
	OllamaHost     string

	// HTTP server
	ServerPort string
	CronSecret string

	// Optional YAML file overriding the built-in seed cast
	CastFile string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
// The oracle defaults target DeepSeek's OpenAI-compatible endpoint, matching
// the service the villa originally ran against.
func Load() Config {
	return Config{
		DBURL:       getEnv("VILLA_DB_URL", "ws://localhost:8000/rpc"),
		DBNamespace: getEnv("VILLA_DB_NAMESPACE", "villa"),
		DBDatabase:  getEnv("VILLA_DB_DATABASE", "island"),
		DBUser:      getEnv("VILLA_DB_USER", "root"),
		DBPass:      getEnv("VILLA_DB_PASS", "root"),
		DBAuthLevel: getEnv("VILLA_DB_AUTH_LEVEL", "root"),

		OracleProvider: getEnv("VILLA_ORACLE_PROVIDER", ProviderOpenAI),
		OracleAPIKey:   getEnv("VILLA_ORACLE_API_KEY", os.Getenv("DEEPSEEK_API_KEY")),
		OracleBaseURL:  getEnv("VILLA_ORACLE_BASE_URL", "https://api.deepseek.com/v1"),
		OracleModel:    getEnv("VILLA_ORACLE_MODEL", "deepseek-chat"),
		OracleTimeout:  getDuration("VILLA_ORACLE_TIMEOUT", 45*time.Second),
		OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),

		ServerPort: getEnv("VILLA_SERVER_PORT", "8080"),
		CronSecret: os.Getenv("VILLA_CRON_SECRET"),

		CastFile: os.Getenv("VILLA_CAST_FILE"),

		LogFile:  getEnv("VILLA_LOG_FILE", "/tmp/villa.log"),
		LogLevel: parseLogLevel(getEnv("VILLA_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
