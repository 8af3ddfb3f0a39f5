package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/modern-world/internal/config"
	"github.com/jwebster45206/modern-world/pkg/chat"
)

// LLMService defines the interface for interacting with the LLM API
type LLMService interface {
	// InitModel prepares the provider on startup
	InitModel(ctx context.Context, modelName string) error

	// Chat generates a single response for the message list
	Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)
}

// SchemaEnforcer is implemented by providers that constrain output to the
// turn response schema themselves.
type SchemaEnforcer interface {
	EnforcesSchema() bool
}

// EnforcesSchema reports whether svc validates output against the turn
// schema natively.
func EnforcesSchema(svc LLMService) bool {
	se, ok := svc.(SchemaEnforcer)
	return ok && se.EnforcesSchema()
}

// NewLLMService builds the provider selected in cfg.
func NewLLMService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (LLMService, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.ModelName, cfg.Temperature, logger)
	case config.ProviderAnthropic:
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, logger, WithAnthropicTemperature(cfg.Temperature)), nil
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.ModelName, cfg.OpenAIBaseURL, cfg.Temperature, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLMProvider)
	}
}
