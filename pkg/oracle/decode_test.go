package oracle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
)

func prevState(t *testing.T) *state.GameState {
	t.Helper()
	gs, err := catalog.NewSeed("Türkiye", catalog.RolePresident)
	require.NoError(t, err)
	return gs
}

const fullResponse = `{
  "date": "1 Şubat 2026",
  "location": "Ankara",
  "summary": "Piyasalar sakin.",
  "intelligence": "Sınırda hareketlilik.",
  "pendingIssues": ["Enflasyon baskısı", "Sınır gerginliği"],
  "updatedStats": {"gdp": 510, "inflation": 11.5, "unemployment": 8.8, "budgetBalance": -9, "armyMorale": 62, "publicSupport": 57, "stability": 60, "techPoints": 55},
  "updatedMinistries": [{"id": "eco", "morale": 70, "budgetShare": 26, "efficiency": 77}],
  "cabinetDecisions": [{
    "id": "dec-1", "title": "Vergi Reformu", "description": "Yeni vergi dilimi.", "fromMinistryId": "eco",
    "options": [{"label": "Uygula", "impact": "+Bütçe", "action": "TAX_UP"}, {"label": "Ertele", "impact": "0", "action": "NOOP"}]
  }],
  "npcActivity": [{"ministerId": "def", "action": "Tatbikat düzenlendi"}],
  "relationsUpdate": [{"country": "Almanya", "score": 65}, {"country": "Rusya", "score": 40}]
}`

func TestDecode_FullResponse(t *testing.T) {
	prev := prevState(t)
	res, err := Decode(fullResponse, prev)
	require.NoError(t, err)

	assert.Equal(t, "1 Şubat 2026", res.Date)
	assert.Equal(t, "Ankara", res.Location)
	assert.Equal(t, "Piyasalar sakin.", res.Summary)
	assert.Equal(t, []string{"Enflasyon baskısı", "Sınır gerginliği"}, res.PendingIssues)
	assert.Equal(t, state.Stats{GDP: 510, Inflation: 11.5, Unemployment: 8.8, BudgetBalance: -9, ArmyMorale: 62, PublicSupport: 57, Stability: 60, TechPoints: 55}, res.StatsSnapshot)

	require.Len(t, res.MinistryUpdates, 1)
	assert.Equal(t, "eco", res.MinistryUpdates[0].ID)
	assert.Equal(t, 70.0, *res.MinistryUpdates[0].Morale)
	assert.Nil(t, res.MinistryUpdates[0].MinisterName)

	require.Len(t, res.CabinetDecisions, 1)
	d := res.CabinetDecisions[0]
	assert.Equal(t, "dec-1", d.ID)
	assert.Equal(t, "eco", d.FromMinistryID)
	require.Len(t, d.Options, 2)
	assert.Equal(t, state.DecisionOption{Label: "Uygula", Impact: "+Bütçe", Action: "TAX_UP"}, d.Options[0])

	assert.Equal(t, []state.NPCActivity{{MinisterID: "def", Action: "Tatbikat düzenlendi"}}, res.NPCActivity)
	assert.Equal(t, map[string]float64{"Almanya": 65, "Rusya": 40}, res.RelationUpdates)
}

func TestDecode_DefaultsMissingFields(t *testing.T) {
	prev := prevState(t)
	prev.CurrentDate = "1 Mart 2026"

	res, err := Decode(`{}`, prev)
	require.NoError(t, err)

	assert.Equal(t, "1 Mart 2026", res.Date)
	assert.Equal(t, "Türkiye", res.Location)
	assert.Equal(t, DefaultSummary, res.Summary)
	assert.Equal(t, DefaultIntelligence, res.Intelligence)
	assert.Equal(t, prev.CurrentStats, res.StatsSnapshot)
	assert.NotNil(t, res.PendingIssues)
	assert.Empty(t, res.PendingIssues)
	assert.NotNil(t, res.MinistryUpdates)
	assert.Empty(t, res.MinistryUpdates)
	assert.NotNil(t, res.CabinetDecisions)
	assert.Empty(t, res.CabinetDecisions)
	assert.NotNil(t, res.NPCActivity)
	assert.NotNil(t, res.RelationUpdates)
	assert.True(t, res.IsEmpty())

	// Reducing an all-default result keeps the state valid.
	next := state.ApplyTurn(prev, res)
	assert.Equal(t, prev.CurrentStats, next.CurrentStats)
	assert.Equal(t, prev.Ministries, next.Ministries)
}

func TestDecode_MalformedFields(t *testing.T) {
	prev := prevState(t)

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, res *state.TurnResult)
	}{
		{
			name:  "lists of the wrong type",
			input: `{"pendingIssues": "yok", "updatedMinistries": {"id": "eco"}, "cabinetDecisions": 3, "npcActivity": null, "relationsUpdate": true}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Empty(t, res.PendingIssues)
				assert.Empty(t, res.MinistryUpdates)
				assert.Empty(t, res.CabinetDecisions)
				assert.Empty(t, res.NPCActivity)
				assert.Empty(t, res.RelationUpdates)
			},
		},
		{
			name:  "partial stats fall back per field",
			input: `{"updatedStats": {"gdp": 600, "inflation": "abc", "stability": "61.5"}}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Equal(t, 600.0, res.StatsSnapshot.GDP)
				assert.Equal(t, prev.CurrentStats.Inflation, res.StatsSnapshot.Inflation)
				assert.Equal(t, 61.5, res.StatsSnapshot.Stability)
				assert.Equal(t, prev.CurrentStats.TechPoints, res.StatsSnapshot.TechPoints)
			},
		},
		{
			name:  "stats not an object",
			input: `{"updatedStats": [1, 2, 3]}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Equal(t, prev.CurrentStats, res.StatsSnapshot)
			},
		},
		{
			name:  "non-string narrative",
			input: `{"summary": 42, "intelligence": "", "date": null, "location": "  "}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Equal(t, DefaultSummary, res.Summary)
				assert.Equal(t, DefaultIntelligence, res.Intelligence)
				assert.Equal(t, prev.CurrentDate, res.Date)
				assert.Equal(t, prev.Country, res.Location)
			},
		},
		{
			name:  "invalid list entries dropped",
			input: `{"pendingIssues": ["ok", 5, ""], "updatedMinistries": [{"morale": 5}, {"id": "def", "morale": "x", "efficiency": 50, "ministerName": "Org. Demir"}], "npcActivity": [{"ministerId": "eco"}, {"action": "x"}, {"ministerId": "sci", "action": "Uydu"}]}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Equal(t, []string{"ok"}, res.PendingIssues)
				require.Len(t, res.MinistryUpdates, 1)
				u := res.MinistryUpdates[0]
				assert.Equal(t, "def", u.ID)
				assert.Nil(t, u.Morale)
				assert.Equal(t, 50.0, *u.Efficiency)
				assert.Equal(t, "Org. Demir", *u.MinisterName)
				assert.Equal(t, []state.NPCActivity{{MinisterID: "sci", Action: "Uydu"}}, res.NPCActivity)
			},
		},
		{
			name:  "decisions without title dropped and missing ids filled",
			input: `{"cabinetDecisions": [{"description": "başlıksız"}, {"title": "Liman", "options": [{"label": ""}, {"label": "Onayla"}]}]}`,
			check: func(t *testing.T, res *state.TurnResult) {
				require.Len(t, res.CabinetDecisions, 1)
				d := res.CabinetDecisions[0]
				assert.Equal(t, "Liman", d.Title)
				assert.NotEmpty(t, d.ID)
				require.Len(t, d.Options, 1)
				assert.Equal(t, "Onayla", d.Options[0].Label)
			},
		},
		{
			name:  "relation scores",
			input: `{"relationsUpdate": [{"country": "Fransa", "score": "yüksek"}, {"score": 10}, {"country": "İran", "score": -20}]}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Equal(t, map[string]float64{"Fransa": 0, "İran": -20}, res.RelationUpdates)
			},
		},
		{
			name:  "relations as object",
			input: `{"relationsUpdate": {"Çin": 55}}`,
			check: func(t *testing.T, res *state.TurnResult) {
				assert.Equal(t, map[string]float64{"Çin": 55}, res.RelationUpdates)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decode(tt.input, prev)
			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestDecode_Rejects(t *testing.T) {
	prev := prevState(t)
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyResponse},
		{"whitespace", "  \n ", ErrEmptyResponse},
		{"prose", "Üzgünüm, yardımcı olamam.", ErrNotJSONObject},
		{"array", `[{"date": "x"}]`, ErrNotJSONObject},
		{"truncated", `{"date": "1 Şubat`, ErrNotJSONObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decode(tt.input, prev)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```\n", `{"a":1}`},
		{"leading prose", "İşte rapor:\n{\"a\":1}", `{"a":1}`},
		{"trailing prose", "{\"a\":1}\nİyi şanslar.", `{"a":1}`},
		{"fence only", "```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanResponse(tt.input))
		})
	}
}

func TestDegraded(t *testing.T) {
	prev := prevState(t)
	res := Degraded(prev)

	assert.Equal(t, prev.CurrentStats, res.StatsSnapshot)
	assert.Equal(t, prev.CurrentDate, res.Date)
	assert.Equal(t, DegradedSummary, res.Summary)
	assert.Equal(t, DegradedIntelligence, res.Intelligence)
	assert.Equal(t, []string{DegradedIssue}, res.PendingIssues)
	assert.True(t, res.IsEmpty())
}
