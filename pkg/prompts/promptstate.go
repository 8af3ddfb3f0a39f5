package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/jwebster45206/modern-world/pkg/state"
)

// PromptStats mirrors state.Stats with the key names used in the oracle's
// response schema.
type PromptStats struct {
	GDP           float64 `json:"gdp"`
	Inflation     float64 `json:"inflation"`
	Unemployment  float64 `json:"unemployment"`
	BudgetBalance float64 `json:"budgetBalance"`
	ArmyMorale    float64 `json:"armyMorale"`
	PublicSupport float64 `json:"publicSupport"`
	Stability     float64 `json:"stability"`
	TechPoints    float64 `json:"techPoints"`
}

type PromptDecision struct {
	DecisionTitle  string `json:"decisionTitle"`
	SelectedOption string `json:"selectedOption"`
}

// PromptState is the reduced game state sent with every order. History,
// relations and the roster stay out of the prompt.
type PromptState struct {
	Stats           PromptStats      `json:"stats"`
	Role            string           `json:"role"`
	Country         string           `json:"country"`
	Date            string           `json:"date"`
	Techs           []string         `json:"techs"`
	StagedDecisions []PromptDecision `json:"stagedDecisions"`
}

func ToPromptState(gs *state.GameState) *PromptState {
	s := gs.CurrentStats
	ps := &PromptState{
		Stats: PromptStats{
			GDP:           s.GDP,
			Inflation:     s.Inflation,
			Unemployment:  s.Unemployment,
			BudgetBalance: s.BudgetBalance,
			ArmyMorale:    s.ArmyMorale,
			PublicSupport: s.PublicSupport,
			Stability:     s.Stability,
			TechPoints:    s.TechPoints,
		},
		Role:            gs.PlayerRole,
		Country:         gs.Country,
		Date:            gs.CurrentDate,
		Techs:           append([]string{}, gs.UnlockedTechIDs...),
		StagedDecisions: make([]PromptDecision, 0, len(gs.StagedDecisions)),
	}
	for _, sd := range gs.StagedDecisions {
		ps.StagedDecisions = append(ps.StagedDecisions, PromptDecision{
			DecisionTitle:  sd.DecisionTitle,
			SelectedOption: sd.SelectedOption,
		})
	}
	return ps
}

// GetStatePrompt renders the "MEVCUT DURUM" line for the turn prompt.
func GetStatePrompt(gs *state.GameState) (string, error) {
	if gs == nil {
		return "", fmt.Errorf("game state is required")
	}
	b, err := json.Marshal(ToPromptState(gs))
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt state: %w", err)
	}
	return "MEVCUT DURUM: " + string(b), nil
}
