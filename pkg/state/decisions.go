package state

import (
	"errors"
	"fmt"
)

const (
	// VetoOption is staged when the player rejects a decision outright.
	VetoOption = "REDDEDİLDİ (VETO)"

	// TechStagedPrefix and TechStagedOption describe the pseudo-decision
	// staged when a technology is activated.
	TechStagedPrefix = "Ar-Ge: "
	TechStagedOption = "Aktif Edildi"
)

var (
	ErrInsufficientResearch = errors.New("insufficient research points")
	ErrAlreadyUnlocked      = errors.New("technology already unlocked")
	ErrNoGameState          = errors.New("no game state")
)

// StageDecision records the chosen option for a decision title. Staging is
// idempotent: if the title is already staged the first choice is kept and
// the returned state equals prev.
func StageDecision(prev *GameState, title, option string) *GameState {
	if prev == nil {
		return nil
	}
	next := prev.Clone()
	if next.IsStaged(title) {
		return next
	}
	next.StagedDecisions = append(next.StagedDecisions, StagedDecision{
		DecisionTitle:  title,
		SelectedOption: option,
	})
	return next
}

// RejectDecision stages the veto sentinel for a decision title.
func RejectDecision(prev *GameState, title string) *GameState {
	return StageDecision(prev, title, VetoOption)
}

// UnlockTechnology spends research points on a catalog technology. On error
// prev is returned unchanged.
func UnlockTechnology(prev *GameState, tech Technology) (*GameState, error) {
	if prev == nil {
		return nil, fmt.Errorf("unlock %s: %w", tech.ID, ErrNoGameState)
	}
	if prev.IsUnlocked(tech.ID) {
		return prev, fmt.Errorf("%s: %w", tech.ID, ErrAlreadyUnlocked)
	}
	balance := prev.CurrentStats.TechPoints
	if balance < tech.Cost {
		return prev, fmt.Errorf("%s costs %.0f, balance %.0f: %w", tech.ID, tech.Cost, balance, ErrInsufficientResearch)
	}

	next := prev.Clone()
	next.UnlockedTechIDs = append(next.UnlockedTechIDs, tech.ID)
	next.CurrentStats.TechPoints = balance - tech.Cost
	next.StagedDecisions = append(next.StagedDecisions, StagedDecision{
		DecisionTitle:  TechStagedPrefix + tech.Name,
		SelectedOption: TechStagedOption,
	})
	return next, nil
}

// CanAfford reports whether the current research balance covers tech.
func (gs *GameState) CanAfford(tech Technology) bool {
	return gs.CurrentStats.TechPoints >= tech.Cost
}
