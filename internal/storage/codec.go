package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jwebster45206/modern-world/pkg/state"
)

func encodeSave(gs *state.GameState) ([]byte, error) {
	if gs == nil {
		return nil, fmt.Errorf("gamestate cannot be nil")
	}
	data, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gamestate: %w", err)
	}
	return data, nil
}

// decodeSave parses a saved blob. Only structure is checked; a JSON null
// decodes to nil. Clone replaces nil collections with empty ones.
func decodeSave(data []byte) (*state.GameState, error) {
	var gs *state.GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gamestate: %w", err)
	}
	return gs.Clone(), nil
}
