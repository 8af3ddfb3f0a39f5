package state

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func turnResult(date string) *TurnResult {
	return &TurnResult{
		Report: Report{
			Date:          date,
			Location:      "Ankara",
			Summary:       "Özet " + date,
			Intelligence:  "İstihbarat",
			PendingIssues: []string{},
			StatsSnapshot: Stats{GDP: 510, Inflation: 11, TechPoints: 55},
		},
		MinistryUpdates: []MinistryUpdate{},
		RelationUpdates: map[string]float64{},
	}
}

func ministryIDs(gs *GameState) []string {
	ids := make([]string, len(gs.Ministries))
	for i, m := range gs.Ministries {
		ids[i] = m.ID
	}
	return ids
}

func TestApplyTurn_MergesPartialMinistryUpdates(t *testing.T) {
	prev := testGameState()
	res := turnResult("1 Şubat 2026")
	res.MinistryUpdates = []MinistryUpdate{
		{ID: "eco", Morale: ptr(40.0)},
		{ID: "def", BudgetShare: ptr(30.0), Efficiency: ptr(85.0), MinisterName: ptr("Orgeneral Kaya")},
		{ID: "eco", Morale: ptr(99.0)}, // only the first match is used
	}

	next := ApplyTurn(prev, res)

	eco, _ := next.Ministry("eco")
	assert.Equal(t, float64(40), eco.Morale)
	assert.Equal(t, float64(25), eco.BudgetShare, "absent field untouched")
	assert.Equal(t, float64(75), eco.Efficiency, "absent field untouched")

	def, _ := next.Ministry("def")
	assert.Equal(t, float64(70), def.Morale)
	assert.Equal(t, float64(30), def.BudgetShare)
	assert.Equal(t, float64(85), def.Efficiency)
	assert.Equal(t, "Orgeneral Kaya", def.MinisterName)

	// prev is not modified
	prevEco, _ := prev.Ministry("eco")
	assert.Equal(t, float64(65), prevEco.Morale)
}

func TestApplyTurn_PreservesMinistryIdentity(t *testing.T) {
	tests := []struct {
		name    string
		updates []MinistryUpdate
		npc     []NPCActivity
	}{
		{name: "no updates"},
		{name: "unknown id ignored", updates: []MinistryUpdate{{ID: "space", Morale: ptr(10.0)}}, npc: []NPCActivity{{MinisterID: "space", Action: "roket"}}},
		{name: "all ids updated", updates: []MinistryUpdate{{ID: "def"}, {ID: "eco"}, {ID: "sci"}}},
		{name: "empty id", updates: []MinistryUpdate{{ID: "", Morale: ptr(1.0)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := testGameState()
			res := turnResult("1 Şubat 2026")
			res.MinistryUpdates = tt.updates
			res.NPCActivity = tt.npc

			next := ApplyTurn(prev, res)
			assert.Equal(t, ministryIDs(prev), ministryIDs(next))
			assert.Equal(t, prev.Country, next.Country)
			assert.Equal(t, prev.PlayerRole, next.PlayerRole)
			assert.Equal(t, prev.ID, next.ID)
		})
	}
}

func TestApplyTurn_AutomatedActionsCappedAtThree(t *testing.T) {
	gs := testGameState()
	for i := 1; i <= 7; i++ {
		res := turnResult(fmt.Sprintf("tur %d", i))
		res.NPCActivity = []NPCActivity{
			{MinisterID: "sci", Action: fmt.Sprintf("eylem %d", i)},
			{MinisterID: "sci", Action: "ignored duplicate"},
		}
		gs = ApplyTurn(gs, res)

		for _, m := range gs.Ministries {
			assert.LessOrEqual(t, len(m.AutomatedActions), AutomatedActionLimit)
		}
	}

	sci, _ := gs.Ministry("sci")
	assert.Equal(t, []string{"eylem 5", "eylem 6", "eylem 7"}, sci.AutomatedActions)

	def, _ := gs.Ministry("def")
	assert.Empty(t, def.AutomatedActions)
}

func TestApplyTurn_HistoryBoundedNewestFirst(t *testing.T) {
	gs := testGameState()
	for i := 1; i <= 45; i++ {
		gs = ApplyTurn(gs, turnResult(fmt.Sprintf("tur %d", i)))
		assert.LessOrEqual(t, len(gs.History), HistoryLimit)
		assert.Equal(t, fmt.Sprintf("tur %d", i), gs.History[0].Date)
	}
	require.Len(t, gs.History, HistoryLimit)
	assert.Equal(t, "tur 16", gs.History[HistoryLimit-1].Date)
}

func TestApplyTurn_ThirtyFirstCommitEvictsOldest(t *testing.T) {
	gs := testGameState()
	for i := 1; i <= 30; i++ {
		gs = ApplyTurn(gs, turnResult(fmt.Sprintf("tur %d", i)))
	}
	require.Len(t, gs.History, 30)
	assert.Equal(t, "tur 1", gs.History[29].Date)

	gs = ApplyTurn(gs, turnResult("tur 31"))
	require.Len(t, gs.History, 30)
	assert.Equal(t, "tur 31", gs.History[0].Date)
	assert.Equal(t, "tur 2", gs.History[29].Date)
}

func TestApplyTurn_ReplacesDateAndStatsWholesale(t *testing.T) {
	prev := testGameState()
	res := turnResult("1 Mart 2026")
	res.StatsSnapshot = Stats{GDP: 1, Stability: -400}

	next := ApplyTurn(prev, res)
	assert.Equal(t, "1 Mart 2026", next.CurrentDate)
	assert.Equal(t, Stats{GDP: 1, Stability: -400}, next.CurrentStats)
	assert.Equal(t, next.CurrentStats, next.History[0].StatsSnapshot)
}

func TestApplyTurn_MergesRelationsWithoutDecay(t *testing.T) {
	prev := testGameState()
	prev.Relations = map[string]float64{"Almanya": 60, "Rusya": 20}
	res := turnResult("1 Şubat 2026")
	res.RelationUpdates = map[string]float64{"Rusya": 35, "Japonya": 70}

	next := ApplyTurn(prev, res)
	assert.Equal(t, map[string]float64{"Almanya": 60, "Rusya": 35, "Japonya": 70}, next.Relations)
	assert.Equal(t, map[string]float64{"Almanya": 60, "Rusya": 20}, prev.Relations)
}

func TestApplyTurn_ClearsStagedDecisions(t *testing.T) {
	prev := testGameState()
	prev = StageDecision(prev, "Vergi Reformu", "Kabul")
	prev = RejectDecision(prev, "Sınır Tatbikatı")
	require.Len(t, prev.StagedDecisions, 2)

	next := ApplyTurn(prev, turnResult("1 Şubat 2026"))
	assert.NotNil(t, next.StagedDecisions)
	assert.Empty(t, next.StagedDecisions)
}

func TestApplyTurn_EmptyResultKeepsStateValid(t *testing.T) {
	prev := testGameState()
	res := &TurnResult{Report: Report{Date: prev.CurrentDate, StatsSnapshot: prev.CurrentStats}}

	next := ApplyTurn(prev, res)
	require.NotNil(t, next)
	assert.Equal(t, prev.CurrentStats, next.CurrentStats)
	assert.Equal(t, prev.Ministries, next.Ministries)
	assert.Len(t, next.History, 1)
	assert.Empty(t, next.Relations)
}

func TestApplyTurn_NilInputs(t *testing.T) {
	assert.Nil(t, ApplyTurn(nil, turnResult("x")))

	prev := testGameState()
	next := ApplyTurn(prev, nil)
	assert.Equal(t, prev, next)
	assert.NotSame(t, prev, next)
}

func TestApplyTurn_DoesNotAliasResult(t *testing.T) {
	res := turnResult("1 Şubat 2026")
	res.PendingIssues = []string{"Enflasyon"}
	next := ApplyTurn(testGameState(), res)

	res.PendingIssues[0] = "değişti"
	assert.True(t, slices.Equal([]string{"Enflasyon"}, next.History[0].PendingIssues))
}
