package storage

import (
	"context"

	"github.com/jwebster45206/modern-world/pkg/state"
)

// SaveKey names the single persisted game. There is no versioning beyond
// the key itself; an unreadable blob is treated as absent.
const SaveKey = "modern_world_save_v2.5"

// Storage persists the one active game.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveGameState overwrites the saved game.
	SaveGameState(ctx context.Context, gs *state.GameState) error

	// LoadGameState returns nil, nil when there is no save or the saved
	// blob cannot be parsed.
	LoadGameState(ctx context.Context) (*state.GameState, error)

	// DeleteGameState discards the save. Deleting a missing save is not an error.
	DeleteGameState(ctx context.Context) error
}
