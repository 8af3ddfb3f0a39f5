// Package game owns the single running game: it serializes oracle calls,
// applies results through the reducer and persists every committed state.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
	"github.com/jwebster45206/modern-world/pkg/storage"
)

// Oracle produces turn results. *oracle.Client satisfies it.
type Oracle interface {
	Bootstrap(ctx context.Context, country, roleID string) (*state.GameState, *state.TurnResult, error)
	Advance(ctx context.Context, command string, gs *state.GameState) (*state.TurnResult, error)
}

// Notifier receives game events after they are persisted.
// *events.Broadcaster satisfies it.
type Notifier interface {
	PublishGameStarted(ctx context.Context, gameID uuid.UUID, country, role string) error
	PublishTurnCommitted(ctx context.Context, gameID uuid.UUID, date, command string, degraded bool) error
	PublishTurnFailed(ctx context.Context, gameID uuid.UUID, command, message string) error
	PublishDecisionStaged(ctx context.Context, gameID uuid.UUID, title, option string) error
	PublishTechUnlocked(ctx context.Context, gameID uuid.UUID, techID string, balance float64) error
	PublishGameDiscarded(ctx context.Context, gameID uuid.UUID) error
}

type Session struct {
	oracle         Oracle
	store          storage.Storage
	notifier       Notifier
	logger         *slog.Logger
	commitDegraded bool

	mu      sync.Mutex
	gs      *state.GameState
	loading bool
	lastErr error
}

type Option func(*Session)

// WithNotifier publishes events for every committed transition.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithDegradedTurns commits the placeholder result of a failed turn
// instead of surfacing the failure.
func WithDegradedTurns() Option {
	return func(s *Session) { s.commitDegraded = true }
}

func NewSession(o Oracle, store storage.Storage, logger *slog.Logger, opts ...Option) *Session {
	s := &Session{
		oracle: o,
		store:  store,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current game, or nil.
func (s *Session) Snapshot() *state.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gs.Clone()
}

// Loading reports whether an oracle call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// HasSave reports whether a readable save exists.
func (s *Session) HasSave(ctx context.Context) (bool, error) {
	gs, err := s.store.LoadGameState(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to probe save: %w", err)
	}
	return gs != nil, nil
}

// Resume loads the saved game, if any.
func (s *Session) Resume(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false, ErrBusy
	}

	gs, err := s.store.LoadGameState(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load save: %w", err)
	}
	if gs == nil {
		return false, nil
	}
	s.gs = gs
	s.lastErr = nil
	s.logger.Info("Game resumed", "game_id", gs.ID, "country", gs.Country, "date", gs.CurrentDate)
	return true, nil
}

// Start bootstraps a new game, replacing any game in memory once the
// opening turn succeeds.
func (s *Session) Start(ctx context.Context, country, roleID string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return ErrEmptyCountry
	}
	if !catalog.IsValidRole(roleID) {
		return fmt.Errorf("%q: %w", roleID, catalog.ErrUnknownRole)
	}
	if err := s.begin(); err != nil {
		return err
	}

	// the caller may go away while the oracle works; the result is still
	// committed, saved and published
	ctx = context.WithoutCancel(ctx)
	seed, res, err := s.oracle.Bootstrap(ctx, country, roleID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.lastErr = &UserError{Message: MsgInitFailed, Err: err}
		s.logger.Error("Game bootstrap failed", "country", country, "role", roleID, "error", err)
		return s.lastErr
	}

	s.commit(ctx, state.ApplyTurn(seed, res))
	s.logger.Info("Game started", "game_id", s.gs.ID, "country", country, "role", roleID)
	if s.notifier != nil {
		if err := s.notifier.PublishGameStarted(ctx, s.gs.ID, country, roleID); err != nil {
			s.logger.Warn("Failed to publish game start", "error", err)
		}
	}
	return nil
}

// Submit sends a player order to the oracle. The reserved next-turn
// literal is passed through like any other order.
func (s *Session) Submit(ctx context.Context, input string) error {
	kind, command := state.ParseCommand(input)
	if kind == state.CmdNone {
		return ErrEmptyCommand
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.gs == nil {
		s.mu.Unlock()
		return ErrNoGame
	}
	prev := s.gs.Clone()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	res, err := s.oracle.Advance(ctx, command, prev)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	degraded := false
	if err != nil {
		if !s.commitDegraded || res == nil {
			s.lastErr = &UserError{Message: MsgTurnFailed, Err: err}
			s.logger.Error("Turn failed", "game_id", prev.ID, "command", command, "error", err)
			if s.notifier != nil {
				if perr := s.notifier.PublishTurnFailed(ctx, prev.ID, command, MsgTurnFailed); perr != nil {
					s.logger.Warn("Failed to publish turn failure", "error", perr)
				}
			}
			return s.lastErr
		}
		degraded = true
		s.logger.Warn("Committing degraded turn", "game_id", prev.ID, "command", command, "error", err)
	}

	s.commit(ctx, state.ApplyTurn(prev, res))
	s.logger.Info("Turn committed",
		"game_id", s.gs.ID,
		"date", s.gs.CurrentDate,
		"kind", kind,
		"degraded", degraded)
	if s.notifier != nil {
		if err := s.notifier.PublishTurnCommitted(ctx, s.gs.ID, s.gs.CurrentDate, command, degraded); err != nil {
			s.logger.Warn("Failed to publish turn", "error", err)
		}
	}
	return nil
}

// NextTurn commits the turn with every staged decision.
func (s *Session) NextTurn(ctx context.Context) error {
	return s.Submit(ctx, state.NextTurnCommand)
}

// Decide stages option optionIndex of a decision from the latest report.
// Deciding an already staged decision keeps the first choice.
func (s *Session) Decide(ctx context.Context, decisionID string, optionIndex int) error {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupDecision(decisionID)
	if err != nil {
		return err
	}
	if optionIndex < 0 || optionIndex >= len(d.Options) {
		return fmt.Errorf("%s option %d: %w", d.Title, optionIndex, ErrInvalidOption)
	}
	return s.stage(ctx, d.Title, d.Options[optionIndex].Label)
}

// Reject stages the veto for a decision from the latest report.
func (s *Session) Reject(ctx context.Context, decisionID string) error {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupDecision(decisionID)
	if err != nil {
		return err
	}
	return s.stage(ctx, d.Title, state.VetoOption)
}

// UnlockTech activates a catalog technology if research points cover it.
// Unlocking an already unlocked technology does nothing.
func (s *Session) UnlockTech(ctx context.Context, techID string) error {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIdle(); err != nil {
		return err
	}
	tech, ok := catalog.TechnologyByID(techID)
	if !ok {
		return fmt.Errorf("%q: %w", techID, ErrUnknownTech)
	}
	if s.gs.IsUnlocked(tech.ID) {
		return nil
	}

	next, err := state.UnlockTechnology(s.gs, tech)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrInsufficientResearch):
			s.lastErr = &UserError{Message: MsgInsufficientResearch, Err: err}
			return s.lastErr
		case errors.Is(err, state.ErrNoGameState):
			return ErrNoGame
		}
		return err
	}

	s.lastErr = nil
	s.commit(ctx, next)
	if s.notifier != nil {
		if err := s.notifier.PublishTechUnlocked(ctx, s.gs.ID, tech.ID, s.gs.CurrentStats.TechPoints); err != nil {
			s.logger.Warn("Failed to publish tech unlock", "error", err)
		}
	}
	return nil
}

// Discard drops the game in memory and the save.
func (s *Session) Discard(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrBusy
	}

	prev := s.gs
	s.gs = nil
	s.lastErr = nil
	if err := s.store.DeleteGameState(ctx); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	if prev != nil {
		s.logger.Info("Game discarded", "game_id", prev.ID)
		if s.notifier != nil {
			if err := s.notifier.PublishGameDiscarded(ctx, prev.ID); err != nil {
				s.logger.Warn("Failed to publish discard", "error", err)
			}
		}
	}
	return nil
}

// InterventionDraft is the order prefix for responding to a pending issue.
func InterventionDraft(issue string) string {
	return fmt.Sprintf("MÜDAHALE [%s]: ", issue)
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	s.lastErr = nil
	return nil
}

// checkIdle requires s.mu.
func (s *Session) checkIdle() error {
	if s.loading {
		return ErrBusy
	}
	if s.gs == nil {
		return ErrNoGame
	}
	return nil
}

// lookupDecision requires s.mu.
func (s *Session) lookupDecision(decisionID string) (state.Decision, error) {
	if err := s.checkIdle(); err != nil {
		return state.Decision{}, err
	}
	d, ok := s.gs.FindDecision(decisionID)
	if !ok {
		return state.Decision{}, fmt.Errorf("%q: %w", decisionID, ErrUnknownDecision)
	}
	return d, nil
}

// stage requires s.mu.
func (s *Session) stage(ctx context.Context, title, option string) error {
	if s.gs.IsStaged(title) {
		return nil
	}
	s.commit(ctx, state.StageDecision(s.gs, title, option))
	if s.notifier != nil {
		if err := s.notifier.PublishDecisionStaged(ctx, s.gs.ID, title, option); err != nil {
			s.logger.Warn("Failed to publish decision", "error", err)
		}
	}
	return nil
}

// commit installs next and persists it. Persistence is best-effort: a
// failed write is logged and the in-memory state stays authoritative.
// Callers pass a context detached from the request so a disconnect cannot
// leave memory and the save out of step. Requires s.mu.
func (s *Session) commit(ctx context.Context, next *state.GameState) {
	s.gs = next
	if err := s.store.SaveGameState(ctx, next); err != nil {
		s.logger.Error("Failed to persist game", "game_id", next.ID, "error", err)
	}
}
