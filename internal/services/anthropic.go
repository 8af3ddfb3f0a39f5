package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jwebster45206/modern-world/pkg/chat"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"

	DefaultAnthropicTemperature = 0.8
	DefaultAnthropicMaxTokens   = 4096
)

// AnthropicService implements LLMService for Anthropic Claude
type AnthropicService struct {
	apiKey      string
	modelName   string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	logger      *slog.Logger
}

var _ LLMService = (*AnthropicService)(nil)

type AnthropicOption func(*AnthropicService)

// WithAnthropicBaseURL points the service at another endpoint.
func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(a *AnthropicService) { a.baseURL = url }
}

func WithAnthropicTemperature(t float64) AnthropicOption {
	return func(a *AnthropicService) { a.temperature = t }
}

type AnthropicChatRequest struct {
	Model         string             `json:"model"`
	MaxTokens     int                `json:"max_tokens"`
	Temperature   *float64           `json:"temperature,omitempty"`
	Messages      []chat.ChatMessage `json:"messages"`
	System        string             `json:"system,omitempty"`
	Stream        bool               `json:"stream,omitempty"`
	StopSequences []string           `json:"stop_sequences,omitempty"`
}

type AnthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type AnthropicChatResponse struct {
	ID         string                  `json:"id"`
	Type       string                  `json:"type"`
	Role       string                  `json:"role"`
	Content    []AnthropicContentBlock `json:"content"`
	Model      string                  `json:"model"`
	StopReason string                  `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewAnthropicService(apiKey string, modelName string, logger *slog.Logger, opts ...AnthropicOption) *AnthropicService {
	a := &AnthropicService{
		apiKey:      apiKey,
		modelName:   modelName,
		baseURL:     anthropicBaseURL,
		temperature: DefaultAnthropicTemperature,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *AnthropicService) InitModel(ctx context.Context, modelName string) error {
	return nil
}

// chatCompletion makes a chat completion request to Anthropic with the specified model
func (a *AnthropicService) chatCompletion(ctx context.Context, messages []chat.ChatMessage, modelName string) (string, error) {
	systemPrompt, conversationMessages := chat.SplitSystem(messages)
	if len(conversationMessages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}

	temperature := a.temperature
	anthropicReq := AnthropicChatRequest{
		Model:       modelName,
		MaxTokens:   DefaultAnthropicMaxTokens,
		Temperature: &temperature,
		Messages:    conversationMessages,
		System:      systemPrompt,
	}

	reqBody, err := json.Marshal(anthropicReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/messages", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var anthropicResp AnthropicChatResponse
	if err := json.Unmarshal(body, &anthropicResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if anthropicResp.Error != nil {
		return "", fmt.Errorf("API error: %s", anthropicResp.Error.Message)
	}

	var responseText string
	for _, content := range anthropicResp.Content {
		if content.Type == "text" {
			responseText += content.Text
		}
	}

	a.logger.Debug("Anthropic response received",
		"model", modelName,
		"stop_reason", anthropicResp.StopReason,
		"output_tokens", anthropicResp.Usage.OutputTokens)
	return responseText, nil
}

func (a *AnthropicService) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	content, err := a.chatCompletion(ctx, messages, a.modelName)
	if err != nil {
		return nil, err
	}

	return &chat.ChatResponse{
		Message: content,
		Model:   a.modelName,
	}, nil
}
