package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/modern-world/pkg/chat"
	"github.com/jwebster45206/modern-world/pkg/state"
)

// Builder constructs the chat messages for one oracle call.
type Builder struct {
	gs             *state.GameState
	command        string
	responseFormat bool
	messages       []chat.ChatMessage
}

// New creates a new prompt builder. The response format description is
// included by default.
func New() *Builder {
	return &Builder{
		responseFormat: true,
		messages:       make([]chat.ChatMessage, 0),
	}
}

// WithGameState sets the state the order is evaluated against.
func (b *Builder) WithGameState(gs *state.GameState) *Builder {
	b.gs = gs
	return b
}

// WithCommand sets the player's order.
func (b *Builder) WithCommand(command string) *Builder {
	b.command = command
	return b
}

// WithResponseFormat toggles the textual schema description, for providers
// that enforce a schema natively.
func (b *Builder) WithResponseFormat(include bool) *Builder {
	b.responseFormat = include
	return b
}

// Build returns the system framing followed by the turn prompt.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.gs == nil {
		return nil, fmt.Errorf("gamestate is required")
	}
	if strings.TrimSpace(b.command) == "" {
		return nil, fmt.Errorf("command is required")
	}

	b.messages = make([]chat.ChatMessage, 0, 3)

	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleSystem,
		Content: BuildSystemPrompt(b.gs.PlayerRole, b.gs.Country, b.gs.UnlockedTechIDs),
	})
	if b.responseFormat {
		b.messages = append(b.messages, chat.ChatMessage{
			Role:    chat.ChatRoleSystem,
			Content: ResponseFormatPrompt,
		})
	}

	statePrompt, err := GetStatePrompt(b.gs)
	if err != nil {
		return nil, fmt.Errorf("error generating state prompt: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(statePrompt)
	sb.WriteString("\nOYUNCU EMRİ: ")
	sb.WriteString(b.command)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(TurnPostPrompt, state.NextTurnCommand))

	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleUser,
		Content: sb.String(),
	})
	return b.messages, nil
}

// BuildMessages is a convenience function for the common case.
func BuildMessages(gs *state.GameState, command string) ([]chat.ChatMessage, error) {
	return New().
		WithGameState(gs).
		WithCommand(command).
		Build()
}
