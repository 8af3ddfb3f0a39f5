package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/jwebster45206/modern-world/pkg/state"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	saved     *state.GameState
	pingError error
	saveError error
	loadError error
	saves     int
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail every save
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// SetLoadError configures the mock to fail every load
func (m *MockStorage) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveGameState keeps a deep copy of gs. Like the real backends it fails
// on a cancelled context.
func (m *MockStorage) SaveGameState(ctx context.Context, gs *state.GameState) error {
	if gs == nil {
		return errors.New("gamestate cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.saved = gs.Clone()
	m.saves++
	return nil
}

// LoadGameState mocks loading the saved game
func (m *MockStorage) LoadGameState(ctx context.Context) (*state.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loadError != nil {
		return nil, m.loadError
	}
	return m.saved.Clone(), nil
}

// DeleteGameState mocks discarding the save
func (m *MockStorage) DeleteGameState(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}

// Saved returns the stored game without copying (for assertions)
func (m *MockStorage) Saved() *state.GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saved
}

// SaveCount returns the number of successful saves
func (m *MockStorage) SaveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
