package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/modern-world/pkg/state"
	"github.com/jwebster45206/modern-world/pkg/storage"
)

// RedisStorage keeps the save under storage.SaveKey with no expiry.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	key    string
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	return NewRedisStorageWithClient(rdb, logger)
}

// NewRedisStorageWithClient wraps an existing client, shared with the
// event broadcaster.
func NewRedisStorageWithClient(client *redis.Client, logger *slog.Logger) *RedisStorage {
	return &RedisStorage{
		client: client,
		logger: logger,
		key:    storage.SaveKey,
	}
}

// Client exposes the underlying client.
func (r *RedisStorage) Client() *redis.Client {
	return r.client
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	data, err := encodeSave(gs)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to save gamestate", "key", r.key, "error", err)
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.logger.Error("Failed to load gamestate", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to load gamestate: %w", err)
	}

	gs, err := decodeSave(data)
	if err != nil {
		r.logger.Warn("Discarding unreadable save", "key", r.key, "error", err)
		return nil, nil
	}
	return gs, nil
}

func (r *RedisStorage) DeleteGameState(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Error("Failed to delete gamestate", "key", r.key, "error", err)
		return fmt.Errorf("failed to delete gamestate: %w", err)
	}
	return nil
}
