package storage

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/modern-world/pkg/state"
)

// ExportYAML writes gs as YAML for inspection and hand editing.
func ExportYAML(w io.Writer, gs *state.GameState) error {
	if gs == nil {
		return fmt.Errorf("gamestate cannot be nil")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(gs); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// ImportYAML reads a game state previously written by ExportYAML.
func ImportYAML(r io.Reader) (*state.GameState, error) {
	var gs state.GameState
	if err := yaml.NewDecoder(r).Decode(&gs); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	return gs.Clone(), nil
}
