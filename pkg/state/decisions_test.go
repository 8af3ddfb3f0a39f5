package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageDecision_Idempotent(t *testing.T) {
	gs := testGameState()

	gs = StageDecision(gs, "Vergi Reformu", "Kademeli uygula")
	gs = StageDecision(gs, "Vergi Reformu", "Hemen uygula")
	gs = RejectDecision(gs, "Vergi Reformu")

	require.Len(t, gs.StagedDecisions, 1)
	assert.Equal(t, StagedDecision{DecisionTitle: "Vergi Reformu", SelectedOption: "Kademeli uygula"}, gs.StagedDecisions[0])
}

func TestRejectDecision_StagesVeto(t *testing.T) {
	gs := testGameState()
	require.Empty(t, gs.StagedDecisions)

	gs = RejectDecision(gs, "X")

	require.Len(t, gs.StagedDecisions, 1)
	assert.Equal(t, StagedDecision{DecisionTitle: "X", SelectedOption: "REDDEDİLDİ (VETO)"}, gs.StagedDecisions[0])
}

func TestStageDecision_DoesNotModifyPrev(t *testing.T) {
	prev := testGameState()
	next := StageDecision(prev, "A", "B")
	assert.Empty(t, prev.StagedDecisions)
	assert.Len(t, next.StagedDecisions, 1)
	assert.Nil(t, StageDecision(nil, "A", "B"))
}

func TestUnlockTechnology(t *testing.T) {
	cyber := Technology{ID: "cyber_def", Name: "Siber Kalkan", Cost: 40, Category: TechMilitary}

	t.Run("spends points and stages activation", func(t *testing.T) {
		gs := testGameState()
		require.Equal(t, float64(50), gs.CurrentStats.TechPoints)

		next, err := UnlockTechnology(gs, cyber)
		require.NoError(t, err)
		assert.Equal(t, float64(10), next.CurrentStats.TechPoints)
		assert.True(t, next.IsUnlocked("cyber_def"))
		require.Len(t, next.StagedDecisions, 1)
		assert.Equal(t, StagedDecision{DecisionTitle: "Ar-Ge: Siber Kalkan", SelectedOption: "Aktif Edildi"}, next.StagedDecisions[0])

		assert.False(t, gs.IsUnlocked("cyber_def"), "prev untouched")
		assert.Equal(t, float64(50), gs.CurrentStats.TechPoints)
	})

	t.Run("insufficient points leaves state unchanged", func(t *testing.T) {
		gs := testGameState()
		gs.CurrentStats.TechPoints = 39

		next, err := UnlockTechnology(gs, cyber)
		assert.True(t, errors.Is(err, ErrInsufficientResearch))
		assert.Equal(t, gs, next)
		assert.Empty(t, next.UnlockedTechIDs)
		assert.Equal(t, float64(39), next.CurrentStats.TechPoints)
	})

	t.Run("already unlocked leaves state unchanged", func(t *testing.T) {
		gs := testGameState()
		gs.CurrentStats.TechPoints = 200
		gs, err := UnlockTechnology(gs, cyber)
		require.NoError(t, err)

		again, err := UnlockTechnology(gs, cyber)
		assert.ErrorIs(t, err, ErrAlreadyUnlocked)
		assert.Equal(t, gs, again)
		assert.Equal(t, []string{"cyber_def"}, again.UnlockedTechIDs)
		assert.Equal(t, float64(160), again.CurrentStats.TechPoints)
	})

	t.Run("exact balance is affordable", func(t *testing.T) {
		gs := testGameState()
		gs.CurrentStats.TechPoints = 40
		assert.True(t, gs.CanAfford(cyber))
		next, err := UnlockTechnology(gs, cyber)
		require.NoError(t, err)
		assert.Equal(t, float64(0), next.CurrentStats.TechPoints)
	})
}

func TestUnlockTechnology_NilState(t *testing.T) {
	next, err := UnlockTechnology(nil, Technology{ID: "cyber_def", Cost: 40})
	assert.Nil(t, next)
	assert.True(t, errors.Is(err, ErrNoGameState))
}

func TestUnlockTechnology_MonotonicAcrossTurns(t *testing.T) {
	gs := testGameState()
	gs.CurrentStats.TechPoints = 100
	gs, err := UnlockTechnology(gs, Technology{ID: "universal_edu", Name: "Dijital Akademi", Cost: 30})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		res := turnResult("tur")
		gs = ApplyTurn(gs, res)
		assert.Contains(t, gs.UnlockedTechIDs, "universal_edu")
	}
}
