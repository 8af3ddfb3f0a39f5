package chat

import "testing"

func TestChatMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     ChatMessage
		wantErr bool
	}{
		{name: "user message", msg: ChatMessage{Role: ChatRoleUser, Content: "Sonraki Tur"}},
		{name: "system message", msg: ChatMessage{Role: ChatRoleSystem, Content: "framing"}},
		{name: "unknown role", msg: ChatMessage{Role: "narrator", Content: "x"}, wantErr: true},
		{name: "blank content", msg: ChatMessage{Role: ChatRoleUser, Content: "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitSystem(t *testing.T) {
	messages := []ChatMessage{
		{Role: ChatRoleSystem, Content: "You are the engine."},
		{Role: ChatRoleUser, Content: "Hello"},
		{Role: ChatRoleSystem, Content: "Return JSON."},
		{Role: ChatRoleAgent, Content: "{}"},
	}

	system, rest := SplitSystem(messages)
	if system != "You are the engine.\n\nReturn JSON." {
		t.Errorf("unexpected system prompt %q", system)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 non-system messages, got %d", len(rest))
	}
	if rest[0].Role != ChatRoleUser || rest[1].Role != ChatRoleAgent {
		t.Errorf("conversation order not preserved: %+v", rest)
	}
}
