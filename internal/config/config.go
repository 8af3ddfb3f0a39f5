package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL" envDefault:"info"`
	LogLevel    slog.Level

	LLMProvider     string  `env:"LLM_PROVIDER" envDefault:"gemini"`
	ModelName       string  `env:"MODEL_NAME"`
	GeminiAPIKey    string  `env:"GEMINI_API_KEY"`
	AnthropicAPIKey string  `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string  `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string  `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Temperature     float64 `env:"LLM_TEMPERATURE" envDefault:"0.8"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	RedisURL       string `env:"REDIS_URL" envDefault:"localhost:6379"`
	SaveDir        string `env:"SAVE_DIR" envDefault:"./saves"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"./saves/modern-world.db"`

	// CommitDegradedTurns commits the placeholder report when the oracle
	// fails mid-game instead of surfacing an error.
	CommitDegradedTurns bool `env:"COMMIT_DEGRADED_TURNS" envDefault:"false"`
	EventsEnabled       bool `env:"EVENTS_ENABLED" envDefault:"false"`

	ConsoleLog string `env:"CONSOLE_LOG" envDefault:"console.log"`
}

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-sonnet-4-5",
	ProviderOpenAI:    "gpt-4o-mini",
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if cfg.ModelName == "" {
		cfg.ModelName = defaultModels[cfg.LLMProvider]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks provider and backend selection and required keys.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when using gemini provider")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when using anthropic provider")
		}
	case ProviderOpenAI:
		// local OpenAI-compatible servers run without a key
		if c.OpenAIBaseURL == "" {
			return fmt.Errorf("OPENAI_BASE_URL is required when using openai provider")
		}
	default:
		return fmt.Errorf("invalid LLM provider %q (supported: gemini, anthropic, openai)", c.LLMProvider)
	}

	switch c.StorageBackend {
	case BackendFile:
		if c.SaveDir == "" {
			return fmt.Errorf("SAVE_DIR is required for file storage")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for redis storage")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for sqlite storage")
		}
	default:
		return fmt.Errorf("invalid storage backend %q (supported: file, redis, sqlite)", c.StorageBackend)
	}

	if c.EventsEnabled && c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when events are enabled")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %v", c.Temperature)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
