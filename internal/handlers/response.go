package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/modern-world/internal/game"
	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err, "status", status)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, ErrorResponse{Error: message})
}

// writeSessionError maps a session error to a status code. Errors carrying
// a player-facing message are answered with that message only.
func writeSessionError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrBusy):
		status = http.StatusConflict
	case errors.Is(err, game.ErrNoGame):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrEmptyCountry),
		errors.Is(err, game.ErrEmptyCommand),
		errors.Is(err, game.ErrUnknownDecision),
		errors.Is(err, game.ErrInvalidOption),
		errors.Is(err, game.ErrUnknownTech),
		errors.Is(err, catalog.ErrUnknownRole),
		errors.Is(err, state.ErrInsufficientResearch):
		status = http.StatusBadRequest
	default:
		if _, ok := game.UserMessage(err); ok {
			status = http.StatusBadGateway
		}
	}

	message := err.Error()
	if msg, ok := game.UserMessage(err); ok {
		message = msg
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "status", status, "error", err)
	} else {
		logger.Warn("Request rejected", "status", status, "error", err)
	}
	writeError(w, logger, status, message)
}
