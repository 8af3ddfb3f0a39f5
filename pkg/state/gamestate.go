package state

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// HistoryLimit is the number of reports retained in GameState.History.
const HistoryLimit = 30

// Stats is a flat snapshot of national indicators. Values are taken from the
// oracle as-is; no bounds are enforced.
type Stats struct {
	GDP           float64 `json:"gdp" yaml:"gdp"`
	Inflation     float64 `json:"inflation" yaml:"inflation"`
	Unemployment  float64 `json:"unemployment" yaml:"unemployment"`
	BudgetBalance float64 `json:"budget_balance" yaml:"budget_balance"`
	ArmyMorale    float64 `json:"army_morale" yaml:"army_morale"`
	PublicSupport float64 `json:"public_support" yaml:"public_support"`
	Stability     float64 `json:"stability" yaml:"stability"`
	TechPoints    float64 `json:"tech_points,omitempty" yaml:"tech_points,omitempty"`
}

// Ministry is a cabinet seat. ID is assigned once from the starting roster.
type Ministry struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	MinisterName     string   `json:"minister_name" yaml:"minister_name"`
	Portfolio        string   `json:"portfolio" yaml:"portfolio"`
	Icon             string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Morale           float64  `json:"morale" yaml:"morale"`
	BudgetShare      float64  `json:"budget_share" yaml:"budget_share"`
	Efficiency       float64  `json:"efficiency" yaml:"efficiency"`
	AutomatedActions []string `json:"automated_actions,omitempty" yaml:"automated_actions,omitempty"`
}

// AutomatedActionLimit caps Ministry.AutomatedActions.
const AutomatedActionLimit = 3

// TechCategory groups technologies in the catalog.
type TechCategory string

const (
	TechMilitary TechCategory = "Military"
	TechEconomic TechCategory = "Economic"
	TechSocial   TechCategory = "Social"
)

// Technology is a catalog entry. The catalog itself is never mutated;
// GameState only records which ids are unlocked.
type Technology struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Cost        float64      `json:"cost" yaml:"cost"`
	Category    TechCategory `json:"category" yaml:"category"`
	Benefit     string       `json:"benefit" yaml:"benefit"`
	Icon        string       `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// StagedDecision is the resolution of a Decision awaiting the next turn.
type StagedDecision struct {
	DecisionTitle  string `json:"decision_title" yaml:"decision_title"`
	SelectedOption string `json:"selected_option" yaml:"selected_option"`
}

// GameState is the root aggregate of a running game.
type GameState struct {
	ID              uuid.UUID          `json:"id" yaml:"id"`
	Country         string             `json:"country" yaml:"country"`
	PlayerRole      string             `json:"player_role" yaml:"player_role"`
	CurrentDate     string             `json:"current_date" yaml:"current_date"`
	CurrentStats    Stats              `json:"current_stats" yaml:"current_stats"`
	History         []Report           `json:"history" yaml:"history"` // newest first
	Relations       map[string]float64 `json:"relations" yaml:"relations"`
	Ministries      []Ministry         `json:"ministries" yaml:"ministries"`
	UnlockedTechIDs []string           `json:"unlocked_tech_ids" yaml:"unlocked_tech_ids"`
	StagedDecisions []StagedDecision   `json:"staged_decisions" yaml:"staged_decisions"`
}

// NewGameState creates the turn-zero state for a country and role. The
// roster and stats are copied.
func NewGameState(country, role, date string, stats Stats, ministries []Ministry) *GameState {
	gs := &GameState{
		ID:              uuid.New(),
		Country:         country,
		PlayerRole:      role,
		CurrentDate:     date,
		CurrentStats:    stats,
		History:         make([]Report, 0),
		Relations:       make(map[string]float64),
		Ministries:      make([]Ministry, len(ministries)),
		UnlockedTechIDs: make([]string, 0),
		StagedDecisions: make([]StagedDecision, 0),
	}
	for i, m := range ministries {
		gs.Ministries[i] = m.clone()
	}
	return gs
}

// Clone returns a deep copy of the game state.
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	c := *gs
	c.History = make([]Report, len(gs.History))
	for i, r := range gs.History {
		c.History[i] = r.Clone()
	}
	c.Relations = maps.Clone(gs.Relations)
	if c.Relations == nil {
		c.Relations = make(map[string]float64)
	}
	c.Ministries = make([]Ministry, len(gs.Ministries))
	for i, m := range gs.Ministries {
		c.Ministries[i] = m.clone()
	}
	c.UnlockedTechIDs = append(make([]string, 0, len(gs.UnlockedTechIDs)), gs.UnlockedTechIDs...)
	c.StagedDecisions = append(make([]StagedDecision, 0, len(gs.StagedDecisions)), gs.StagedDecisions...)
	return &c
}

func (m Ministry) clone() Ministry {
	m.AutomatedActions = slices.Clone(m.AutomatedActions)
	return m
}

// LatestReport returns the most recent report, or nil before the first turn.
func (gs *GameState) LatestReport() *Report {
	if gs == nil || len(gs.History) == 0 {
		return nil
	}
	return &gs.History[0]
}

// FindDecision looks up a decision proposed in the latest report by id,
// falling back to an exact title match.
func (gs *GameState) FindDecision(idOrTitle string) (Decision, bool) {
	latest := gs.LatestReport()
	if latest == nil {
		return Decision{}, false
	}
	for _, d := range latest.CabinetDecisions {
		if d.ID == idOrTitle {
			return d, true
		}
	}
	for _, d := range latest.CabinetDecisions {
		if d.Title == idOrTitle {
			return d, true
		}
	}
	return Decision{}, false
}

// StagedOption returns the staged resolution for a decision title.
func (gs *GameState) StagedOption(title string) (string, bool) {
	for _, sd := range gs.StagedDecisions {
		if sd.DecisionTitle == title {
			return sd.SelectedOption, true
		}
	}
	return "", false
}

// IsStaged reports whether a decision title already has a staged resolution.
func (gs *GameState) IsStaged(title string) bool {
	_, ok := gs.StagedOption(title)
	return ok
}

// IsUnlocked reports whether a technology id has been unlocked.
func (gs *GameState) IsUnlocked(techID string) bool {
	return slices.Contains(gs.UnlockedTechIDs, techID)
}

// Ministry returns the ministry with the given id.
func (gs *GameState) Ministry(id string) (Ministry, bool) {
	for _, m := range gs.Ministries {
		if m.ID == id {
			return m, true
		}
	}
	return Ministry{}, false
}
