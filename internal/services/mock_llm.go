package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/modern-world/pkg/chat"
)

// MockTurnResponse is a minimal valid turn payload returned by default.
const MockTurnResponse = `{"date":"1 Şubat 2026","location":"Başkent","summary":"Sakin bir ay geçti.","intelligence":"Sessiz bir dönem.","pendingIssues":["Enflasyon baskısı"],"updatedStats":{"gdp":505,"inflation":11.8,"unemployment":9,"budgetBalance":-9.5,"armyMorale":60,"publicSupport":56,"stability":58,"techPoints":52},"updatedMinistries":[],"cabinetDecisions":[{"id":"mock-1","title":"Vergi Reformu","description":"Yeni vergi dilimi önerisi.","fromMinistryId":"eco","options":[{"label":"Uygula","impact":"+Bütçe -Halk","action":"TAX_UP"},{"label":"Ertele","impact":"Etki yok","action":"NOOP"}]}],"npcActivity":[{"ministerId":"def","action":"Sınır devriyeleri artırıldı."}],"relationsUpdate":[{"country":"Almanya","score":60}]}`

// MockLLMAPI is a mock implementation of LLMService for testing
type MockLLMAPI struct {
	InitModelFunc func(ctx context.Context, modelName string) error
	ChatFunc      func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)

	// Track calls for testing
	InitModelCalls []string
	ChatCalls      []ChatCall

	mu sync.Mutex // protects all fields above
}

type ChatCall struct {
	Messages []chat.ChatMessage
}

var _ LLMService = (*MockLLMAPI)(nil)

// NewMockLLMAPI creates a new mock LLM service
func NewMockLLMAPI() *MockLLMAPI {
	return &MockLLMAPI{
		InitModelCalls: make([]string, 0),
		ChatCalls:      make([]ChatCall, 0),
	}
}

// InitModel mocks model initialization
func (m *MockLLMAPI) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = append(m.InitModelCalls, modelName)

	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

// Chat mocks response generation. The hook runs without the lock held so
// tests can block inside it.
func (m *MockLLMAPI) Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
	m.mu.Lock()
	m.ChatCalls = append(m.ChatCalls, ChatCall{Messages: messages})
	fn := m.ChatFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, messages)
	}

	return &chat.ChatResponse{
		Message: MockTurnResponse,
		Model:   "mock",
	}, nil
}

// Reset clears all call tracking
func (m *MockLLMAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitModelCalls = make([]string, 0)
	m.ChatCalls = make([]ChatCall, 0)
}

// SetInitModelError sets up the mock to return an error on InitModel
func (m *MockLLMAPI) SetInitModelError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitModelFunc = func(ctx context.Context, modelName string) error {
		return err
	}
}

// SetChatError sets up the mock to return an error on Chat
func (m *MockLLMAPI) SetChatError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
		return nil, err
	}
}

// SetChatResponse sets up the mock to return a fixed message on Chat
func (m *MockLLMAPI) SetChatResponse(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChatFunc = func(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error) {
		return &chat.ChatResponse{Message: message, Model: "mock"}, nil
	}
}

// GetCalls returns a copy of the call tracking data in a thread-safe way
func (m *MockLLMAPI) GetCalls() ([]string, []ChatCall) {
	m.mu.Lock()
	defer m.mu.Unlock()

	initCalls := make([]string, len(m.InitModelCalls))
	copy(initCalls, m.InitModelCalls)

	chatCalls := make([]ChatCall, len(m.ChatCalls))
	copy(chatCalls, m.ChatCalls)

	return initCalls, chatCalls
}
