package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []Ministry {
	return []Ministry{
		{ID: "def", Name: "Savunma Bakanlığı", MinisterName: "Bakan Atandı", Portfolio: "Savunma ve Ordu", Morale: 70, BudgetShare: 20, Efficiency: 80},
		{ID: "eco", Name: "Ekonomi Bakanlığı", MinisterName: "Bakan Atandı", Portfolio: "Maliye ve Hazine", Morale: 65, BudgetShare: 25, Efficiency: 75},
		{ID: "sci", Name: "Bilim ve Teknoloji", MinisterName: "Bakan Atandı", Portfolio: "Ar-Ge ve Uzay", Morale: 80, BudgetShare: 5, Efficiency: 90},
	}
}

func testGameState() *GameState {
	return NewGameState("Türkiye", "Cumhurbaşkanı", "1 Ocak 2026", Stats{
		GDP: 500, Inflation: 12, Unemployment: 9, BudgetBalance: -10,
		ArmyMorale: 60, PublicSupport: 55, Stability: 58, TechPoints: 50,
	}, testRoster())
}

func TestNewGameState(t *testing.T) {
	roster := testRoster()
	gs := NewGameState("Türkiye", "Mareşal", "1 Ocak 2026", Stats{GDP: 1}, roster)

	assert.NotEmpty(t, gs.ID)
	assert.Equal(t, "Türkiye", gs.Country)
	assert.Equal(t, "Mareşal", gs.PlayerRole)
	assert.Empty(t, gs.History)
	assert.Empty(t, gs.StagedDecisions)
	assert.NotNil(t, gs.Relations)
	require.Len(t, gs.Ministries, 3)

	// roster is copied, not aliased
	roster[0].Morale = 1
	assert.Equal(t, float64(70), gs.Ministries[0].Morale)
}

func TestGameState_CloneIsDeep(t *testing.T) {
	gs := testGameState()
	gs.Ministries[0].AutomatedActions = []string{"a"}
	gs.Relations["Almanya"] = 40
	gs.History = []Report{{
		Summary:          "ilk",
		PendingIssues:    []string{"sorun"},
		CabinetDecisions: []Decision{{ID: "d1", Title: "X", Options: []DecisionOption{{Label: "Evet"}}}},
	}}
	gs.UnlockedTechIDs = []string{"cyber_def"}
	gs.StagedDecisions = []StagedDecision{{DecisionTitle: "X", SelectedOption: "Evet"}}

	c := gs.Clone()
	c.Ministries[0].AutomatedActions[0] = "b"
	c.Relations["Almanya"] = -5
	c.History[0].PendingIssues[0] = "değişti"
	c.History[0].CabinetDecisions[0].Options[0].Label = "Hayır"
	c.UnlockedTechIDs[0] = "other"
	c.StagedDecisions[0].SelectedOption = "Hayır"

	assert.Equal(t, "a", gs.Ministries[0].AutomatedActions[0])
	assert.Equal(t, float64(40), gs.Relations["Almanya"])
	assert.Equal(t, "sorun", gs.History[0].PendingIssues[0])
	assert.Equal(t, "Evet", gs.History[0].CabinetDecisions[0].Options[0].Label)
	assert.Equal(t, "cyber_def", gs.UnlockedTechIDs[0])
	assert.Equal(t, "Evet", gs.StagedDecisions[0].SelectedOption)

	var nilState *GameState
	assert.Nil(t, nilState.Clone())
}

func TestGameState_FindDecision(t *testing.T) {
	gs := testGameState()
	_, ok := gs.FindDecision("d1")
	assert.False(t, ok, "no report yet")

	gs.History = []Report{{CabinetDecisions: []Decision{
		{ID: "d1", Title: "Vergi Reformu"},
		{ID: "d2", Title: "Sınır Tatbikatı"},
	}}}

	d, ok := gs.FindDecision("d2")
	require.True(t, ok)
	assert.Equal(t, "Sınır Tatbikatı", d.Title)

	d, ok = gs.FindDecision("Vergi Reformu")
	require.True(t, ok)
	assert.Equal(t, "d1", d.ID)

	_, ok = gs.FindDecision("missing")
	assert.False(t, ok)
}

func TestGameState_JSONRoundTripKeepsShape(t *testing.T) {
	gs := testGameState()
	gs.History = []Report{{Date: "1 Şubat 2026", PendingIssues: []string{"Siber saldırı"}}}

	data, err := json.Marshal(gs)
	require.NoError(t, err)

	var loaded GameState
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, gs.ID, loaded.ID)
	assert.Equal(t, gs.CurrentStats, loaded.CurrentStats)
	assert.Equal(t, gs.Ministries, loaded.Ministries)
	assert.Equal(t, "Siber saldırı", loaded.History[0].PendingIssues[0])
}
