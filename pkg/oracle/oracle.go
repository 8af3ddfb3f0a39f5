// Package oracle is the client for the external model that narrates each
// turn. It builds the request, normalizes the untrusted response into a
// state.TurnResult and converts every failure into a degraded result.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/chat"
	"github.com/jwebster45206/modern-world/pkg/prompts"
	"github.com/jwebster45206/modern-world/pkg/state"
)

// ErrOracleUnavailable wraps every transport or decoding failure. It is
// always returned alongside a Degraded result.
var ErrOracleUnavailable = errors.New("oracle unavailable")

// Generator is any chat transport able to answer a message list.
type Generator interface {
	Chat(ctx context.Context, messages []chat.ChatMessage) (*chat.ChatResponse, error)
}

type Client struct {
	gen          Generator
	logger       *slog.Logger
	nativeSchema bool
}

type Option func(*Client)

// WithNativeSchema omits the textual response format from prompts, for
// generators that enforce the schema themselves.
func WithNativeSchema() Option {
	return func(c *Client) { c.nativeSchema = true }
}

func NewClient(gen Generator, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{gen: gen, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bootstrap runs the opening turn for a freshly chosen country and role
// against the catalog seed state. The seed is returned so the caller can
// apply the result to it.
func (c *Client) Bootstrap(ctx context.Context, country, roleID string) (*state.GameState, *state.TurnResult, error) {
	seed, err := catalog.NewSeed(country, roleID)
	if err != nil {
		return nil, nil, err
	}
	res, err := c.Advance(ctx, prompts.BootstrapCommand(country), seed)
	return seed, res, err
}

// Advance evaluates a command against gs. On failure the returned result
// is Degraded(gs) and the error wraps ErrOracleUnavailable. Only invalid
// input (nil state, blank command) yields a nil result.
func (c *Client) Advance(ctx context.Context, command string, gs *state.GameState) (*state.TurnResult, error) {
	if gs == nil {
		return nil, fmt.Errorf("game state is required")
	}
	messages, err := prompts.New().
		WithGameState(gs).
		WithCommand(command).
		WithResponseFormat(!c.nativeSchema).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := c.gen.Chat(ctx, messages)
	if err != nil {
		c.logger.Error("Oracle call failed", "error", err, "country", gs.Country)
		return Degraded(gs), fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}
	if resp == nil {
		return Degraded(gs), fmt.Errorf("%w: %w", ErrOracleUnavailable, ErrEmptyResponse)
	}

	res, err := Decode(resp.Message, gs)
	if err != nil {
		c.logger.Error("Oracle response rejected", "error", err, "model", resp.Model, "response_length", len(resp.Message))
		return Degraded(gs), fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
	}

	c.logger.Debug("Oracle turn decoded",
		"date", res.Date,
		"decisions", len(res.CabinetDecisions),
		"ministry_updates", len(res.MinistryUpdates),
		"relations", len(res.RelationUpdates))
	return res, nil
}
