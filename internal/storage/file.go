package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/modern-world/pkg/state"
	"github.com/jwebster45206/modern-world/pkg/storage"
)

// FileStorage keeps the save as <dir>/<SaveKey>.json.
type FileStorage struct {
	dir    string
	logger *slog.Logger
}

var _ storage.Storage = (*FileStorage)(nil)

func NewFileStorage(dir string, logger *slog.Logger) (*FileStorage, error) {
	if dir == "" {
		dir = "./saves"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStorage{dir: dir, logger: logger}, nil
}

// Path is the save file location.
func (f *FileStorage) Path() string {
	return filepath.Join(f.dir, storage.SaveKey+".json")
}

func (f *FileStorage) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save path %s is not a directory", f.dir)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

// SaveGameState writes to a temp file and renames it over the save so a
// crash never leaves a half-written blob.
func (f *FileStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	data, err := encodeSave(gs)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, storage.SaveKey+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path()); err != nil {
		f.logger.Error("Failed to save gamestate", "path", f.Path(), "error", err)
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}

func (f *FileStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	gs, err := decodeSave(data)
	if err != nil {
		f.logger.Warn("Discarding unreadable save", "path", f.Path(), "error", err)
		return nil, nil
	}
	return gs, nil
}

func (f *FileStorage) DeleteGameState(ctx context.Context) error {
	if err := os.Remove(f.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
