package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jwebster45206/modern-world/pkg/state"
	"github.com/jwebster45206/modern-world/pkg/storage"
)

const savesSchema = `CREATE TABLE IF NOT EXISTS saves (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStorage keeps the save as a single row keyed by storage.SaveKey.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ storage.Storage = (*SQLiteStorage)(nil)

// OpenSQLite opens (and creates) the database at path.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(savesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}

	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	data, err := encodeSave(gs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		storage.SaveKey, string(data), time.Now().UnixMilli())
	if err != nil {
		s.logger.Error("Failed to save gamestate", "error", err)
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE key = ?`, storage.SaveKey).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load gamestate: %w", err)
	}

	gs, err := decodeSave([]byte(data))
	if err != nil {
		s.logger.Warn("Discarding unreadable save", "error", err)
		return nil, nil
	}
	return gs, nil
}

func (s *SQLiteStorage) DeleteGameState(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE key = ?`, storage.SaveKey); err != nil {
		return fmt.Errorf("failed to delete gamestate: %w", err)
	}
	return nil
}
