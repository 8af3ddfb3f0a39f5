// Package storage implements the persistence backends for the saved game.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/modern-world/internal/config"
	"github.com/jwebster45206/modern-world/pkg/storage"
)

// New opens the backend selected in cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return NewFileStorage(cfg.SaveDir, logger)
	case config.BackendSQLite:
		return OpenSQLite(cfg.SQLitePath, logger)
	case config.BackendRedis:
		r := NewRedisStorage(cfg.RedisURL, logger)
		if err := r.WaitForConnection(ctx); err != nil {
			_ = r.Close()
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
