package chat

import (
	"fmt"
	"strings"
)

const (
	ChatRoleUser   = "user"      // Player
	ChatRoleAgent  = "assistant" // Oracle
	ChatRoleSystem = "system"    // Framing
)

// ChatMessage represents a single message sent to an LLM provider.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// ChatResponse is the raw text returned by an LLM provider.
type ChatResponse struct {
	Message string `json:"message,omitempty"`
	Model   string `json:"model,omitempty"`
}

// Validate checks that a message can be sent to a provider.
func (m ChatMessage) Validate() error {
	switch m.Role {
	case ChatRoleUser, ChatRoleAgent, ChatRoleSystem:
	default:
		return fmt.Errorf("invalid chat role %q", m.Role)
	}
	if strings.TrimSpace(m.Content) == "" {
		return fmt.Errorf("message content cannot be empty")
	}
	return nil
}

// SplitSystem joins all system messages into one prompt and returns the
// remaining conversation in order.
func SplitSystem(messages []ChatMessage) (string, []ChatMessage) {
	var systemParts []string
	var rest []ChatMessage

	for _, msg := range messages {
		if msg.Role == ChatRoleSystem {
			systemParts = append(systemParts, msg.Content)
		} else {
			rest = append(rest, msg)
		}
	}

	return strings.Join(systemParts, "\n\n"), rest
}
