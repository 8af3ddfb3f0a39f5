package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jwebster45206/modern-world/pkg/chat"
)

// OpenAIService implements LLMService for OpenAI and compatible chat
// completion servers (Ollama, Venice, vLLM).
type OpenAIService struct {
	apiKey      string
	modelName   string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	logger      *slog.Logger
}

var _ LLMService = (*OpenAIService)(nil)

type OpenAIResponseFormat struct {
	Type string `json:"type"`
}

type OpenAIChatRequest struct {
	Model          string                `json:"model"`
	Messages       []chat.ChatMessage    `json:"messages"`
	Temperature    float64               `json:"temperature"`
	ResponseFormat *OpenAIResponseFormat `json:"response_format,omitempty"`
}

type OpenAIChatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
		Refusal string `json:"refusal,omitempty"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type OpenAIChatResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []OpenAIChatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func NewOpenAIService(apiKey, modelName, baseURL string, temperature float64, logger *slog.Logger) *OpenAIService {
	return &OpenAIService{
		apiKey:      apiKey,
		modelName:   modelName,
		baseURL:     strings.TrimRight(baseURL, "/"),
		temperature: temperature,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

func (o *OpenAIService) InitModel(ctx context.Context, modelName string) error {
	return nil
}

func (o *OpenAIService) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	request := OpenAIChatRequest{
		Model:          o.modelName,
		Messages:       messages,
		Temperature:    o.temperature,
		ResponseFormat: &OpenAIResponseFormat{Type: "json_object"},
	}

	reqBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp OpenAIChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from API")
	}

	choice := chatResp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, fmt.Errorf("model refused to respond: %s", choice.Message.Refusal)
	}
	if choice.Message.Content == "" {
		return nil, fmt.Errorf("no text content found in response")
	}

	o.logger.Debug("OpenAI response received", "model", chatResp.Model, "finish_reason", choice.FinishReason)
	return &chat.ChatResponse{
		Message: choice.Message.Content,
		Model:   o.modelName,
	}, nil
}
