package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/modern-world/internal/services/events"
)

// EventsHandler streams game events as Server-Sent Events.
type EventsHandler struct {
	redisClient *redis.Client
	logger      *slog.Logger
	keepalive   time.Duration
}

func NewEventsHandler(redisClient *redis.Client, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		redisClient: redisClient,
		logger:      logger,
		keepalive:   30 * time.Second,
	}
}

// ServeHTTP handles GET /v1/events/game/{gameID}
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) != 4 || pathParts[0] != "v1" || pathParts[1] != "events" || pathParts[2] != "game" {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid path. Expected /v1/events/game/{gameID}")
		return
	}

	gameID, err := uuid.Parse(pathParts[3])
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game ID format.")
		return
	}

	channel := events.Channel(gameID)
	pubsub := h.redisClient.Subscribe(r.Context(), channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			h.logger.Error("Failed to close pubsub", "error", err)
		}
	}()

	// Wait for the subscription to be confirmed so no event published after
	// "connected" is missed.
	if _, err := pubsub.Receive(r.Context()); err != nil {
		h.logger.Error("Failed to subscribe to game events", "channel", channel, "error", err)
		writeError(w, h.logger, http.StatusServiceUnavailable, "Event stream unavailable")
		return
	}

	h.logger.Info("SSE connection established",
		"game_id", gameID.String(),
		"remote_addr", r.RemoteAddr)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	msgChan := pubsub.Channel()

	keepaliveTicker := time.NewTicker(h.keepalive)
	defer keepaliveTicker.Stop()

	h.sendSSE(w, "connected", map[string]any{
		"game_id": gameID.String(),
		"message": "Connected to event stream",
	})

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("SSE client disconnected", "game_id", gameID.String())
			return

		case msg, ok := <-msgChan:
			if !ok {
				return
			}
			var event events.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				h.logger.Error("Failed to unmarshal event", "error", err, "payload", msg.Payload)
				continue
			}
			h.sendSSE(w, string(event.Type), event)

		case <-keepaliveTicker.C:
			if _, err := fmt.Fprintf(w, ": keepalive\n\n"); err != nil {
				h.logger.Error("Failed to write keepalive", "error", err)
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

func (h *EventsHandler) sendSSE(w http.ResponseWriter, eventType string, data any) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("Failed to marshal SSE data", "error", err)
		return
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, dataJSON); err != nil {
		h.logger.Error("Failed to write event", "error", err)
		return
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
