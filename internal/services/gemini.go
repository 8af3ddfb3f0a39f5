package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jwebster45206/modern-world/pkg/chat"
)

const DefaultGeminiTemperature = 0.8

// GeminiService implements LLMService for Google Gemini with JSON output
// constrained to the turn response schema.
type GeminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	logger      *slog.Logger
}

var _ LLMService = (*GeminiService)(nil)

func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature float64, logger *slog.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{
		client:      client,
		modelName:   modelName,
		temperature: float32(temperature),
		logger:      logger,
	}, nil
}

func (g *GeminiService) InitModel(ctx context.Context, modelName string) error {
	if modelName != "" {
		g.modelName = modelName
	}
	return nil
}

func (g *GeminiService) EnforcesSchema() bool { return true }

func (g *GeminiService) Close() error {
	return g.client.Close()
}

// model configures a generative model for one call.
func (g *GeminiService) model(systemPrompt string) *genai.GenerativeModel {
	model := g.client.GenerativeModel(g.modelName)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = TurnResponseSchema()
	model.SetTemperature(g.temperature)
	return model
}

func (g *GeminiService) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	systemPrompt, conversation := chat.SplitSystem(messages)
	if len(conversation) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	cs := g.model(systemPrompt).StartChat()
	cs.History = toGeminiHistory(conversation[:len(conversation)-1])
	last := conversation[len(conversation)-1]

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text, err := geminiText(resp)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Gemini response received", "model", g.modelName, "response_length", len(text))

	return &chat.ChatResponse{
		Message: text,
		Model:   g.modelName,
	}, nil
}

func toGeminiHistory(messages []chat.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == chat.ChatRoleAgent {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in gemini response")
	}
	return sb.String(), nil
}

// TurnResponseSchema is the structured output every turn must satisfy.
func TurnResponseSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	num := &genai.Schema{Type: genai.TypeNumber}
	object := func(props map[string]*genai.Schema, required ...string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
	}
	array := func(items *genai.Schema) *genai.Schema {
		return &genai.Schema{Type: genai.TypeArray, Items: items}
	}

	return object(map[string]*genai.Schema{
		"date":          str,
		"location":      str,
		"summary":       str,
		"intelligence":  str,
		"pendingIssues": array(str),
		"updatedStats": object(map[string]*genai.Schema{
			"gdp":           num,
			"inflation":     num,
			"unemployment":  num,
			"budgetBalance": num,
			"armyMorale":    num,
			"publicSupport": num,
			"stability":     num,
			"techPoints":    num,
		}, "gdp", "inflation", "unemployment", "budgetBalance", "armyMorale", "publicSupport", "stability"),
		"updatedMinistries": array(object(map[string]*genai.Schema{
			"id":          str,
			"morale":      num,
			"budgetShare": num,
			"efficiency":  num,
		}, "id", "morale", "budgetShare", "efficiency")),
		"cabinetDecisions": array(object(map[string]*genai.Schema{
			"id":             str,
			"title":          str,
			"description":    str,
			"fromMinistryId": str,
			"options": array(object(map[string]*genai.Schema{
				"label":  str,
				"impact": str,
				"action": str,
			}, "label", "impact", "action")),
		}, "id", "title", "description", "fromMinistryId", "options")),
		"npcActivity": array(object(map[string]*genai.Schema{
			"ministerId": str,
			"action":     str,
		})),
		"relationsUpdate": array(object(map[string]*genai.Schema{
			"country": str,
			"score":   num,
		}, "country", "score")),
	}, "date", "location", "summary", "intelligence", "pendingIssues", "updatedStats",
		"updatedMinistries", "cabinetDecisions", "npcActivity", "relationsUpdate")
}
