package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/modern-world/internal/middleware"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeGameStarted    EventType = "game.started"
	EventTypeTurnCommitted  EventType = "turn.committed"
	EventTypeTurnFailed     EventType = "turn.failed"
	EventTypeDecisionStaged EventType = "decision.staged"
	EventTypeTechUnlocked   EventType = "tech.unlocked"
	EventTypeGameDiscarded  EventType = "game.discarded"
)

// Event represents a generic event structure
type Event struct {
	Type      EventType      `json:"type"`
	RequestID string         `json:"request_id,omitempty"`
	GameID    string         `json:"game_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Channel returns the pub/sub channel for a game.
func Channel(gameID uuid.UUID) string {
	return fmt.Sprintf("game-events:%s", gameID.String())
}

// Broadcaster publishes events to Redis Pub/Sub for SSE distribution
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// PublishGameStarted publishes a game.started event
func (b *Broadcaster) PublishGameStarted(ctx context.Context, gameID uuid.UUID, country, role string) error {
	return b.publishToGame(ctx, gameID, EventTypeGameStarted, map[string]any{
		"country": country,
		"role":    role,
	})
}

// PublishTurnCommitted publishes a turn.committed event
func (b *Broadcaster) PublishTurnCommitted(ctx context.Context, gameID uuid.UUID, date, command string, degraded bool) error {
	return b.publishToGame(ctx, gameID, EventTypeTurnCommitted, map[string]any{
		"date":     date,
		"command":  command,
		"degraded": degraded,
	})
}

// PublishTurnFailed publishes a turn.failed event
func (b *Broadcaster) PublishTurnFailed(ctx context.Context, gameID uuid.UUID, command, message string) error {
	return b.publishToGame(ctx, gameID, EventTypeTurnFailed, map[string]any{
		"command": command,
		"error":   message,
	})
}

// PublishDecisionStaged publishes a decision.staged event
func (b *Broadcaster) PublishDecisionStaged(ctx context.Context, gameID uuid.UUID, title, option string) error {
	return b.publishToGame(ctx, gameID, EventTypeDecisionStaged, map[string]any{
		"decision_title":  title,
		"selected_option": option,
	})
}

// PublishTechUnlocked publishes a tech.unlocked event
func (b *Broadcaster) PublishTechUnlocked(ctx context.Context, gameID uuid.UUID, techID string, balance float64) error {
	return b.publishToGame(ctx, gameID, EventTypeTechUnlocked, map[string]any{
		"tech_id":     techID,
		"tech_points": balance,
	})
}

// PublishGameDiscarded publishes a game.discarded event
func (b *Broadcaster) PublishGameDiscarded(ctx context.Context, gameID uuid.UUID) error {
	return b.publishToGame(ctx, gameID, EventTypeGameDiscarded, nil)
}

// publishToGame publishes an event to the game-specific channel
func (b *Broadcaster) publishToGame(ctx context.Context, gameID uuid.UUID, eventType EventType, data map[string]any) error {
	channel := Channel(gameID)
	event := Event{
		Type:      eventType,
		RequestID: middleware.RequestIDFromContext(ctx),
		GameID:    gameID.String(),
		Data:      data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event_type", eventType)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
		"request_id", event.RequestID,
	)
	return nil
}
