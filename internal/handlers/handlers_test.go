package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/jwebster45206/modern-world/internal/game"
	"github.com/jwebster45206/modern-world/internal/services"
	"github.com/jwebster45206/modern-world/pkg/oracle"
	"github.com/jwebster45206/modern-world/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T) (*game.Session, *services.MockLLMAPI, *storage.MockStorage) {
	t.Helper()
	llm := services.NewMockLLMAPI()
	store := storage.NewMockStorage()
	logger := testLogger()
	return game.NewSession(oracle.NewClient(llm, logger), store, logger), llm, store
}
