package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jwebster45206/modern-world/internal/config"
)

func TestSetupWriter_Production(t *testing.T) {
	var buf bytes.Buffer
	log := SetupWriter(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)

	WithRequestID(log, "req-1").Info("hello", "turn", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-1" || entry["msg"] != "hello" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestSetupWriter_DevelopmentLevel(t *testing.T) {
	var buf bytes.Buffer
	log := SetupWriter(&config.Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf)

	log.Info("dropped")
	WithError(WithGameID(log, "g-1"), errors.New("boom")).Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should be filtered at warn level")
	}
	for _, want := range []string{"kept", "game_id=g-1", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
