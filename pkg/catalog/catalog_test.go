package catalog

import (
	"errors"
	"testing"

	"github.com/jwebster45206/modern-world/pkg/state"
)

func TestRoleByID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{RolePresident, true},
		{RoleMarshal, true},
		{RoleEconomy, true},
		{RoleForeign, true},
		{RoleScience, true},
		{"Kral", false},
		{"", false},
		{"cumhurbaşkanı", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidRole(tt.id); got != tt.want {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDefaultMinistries(t *testing.T) {
	want := map[string][3]float64{
		"def": {70, 20, 80},
		"eco": {65, 25, 75},
		"int": {60, 15, 70},
		"for": {75, 10, 85},
		"sci": {80, 5, 90},
	}

	got := DefaultMinistries()
	if len(got) != len(want) {
		t.Fatalf("expected %d ministries, got %d", len(want), len(got))
	}
	for _, m := range got {
		w, ok := want[m.ID]
		if !ok {
			t.Errorf("unexpected ministry %q", m.ID)
			continue
		}
		if m.Morale != w[0] || m.BudgetShare != w[1] || m.Efficiency != w[2] {
			t.Errorf("%s: got %v/%v/%v, want %v", m.ID, m.Morale, m.BudgetShare, m.Efficiency, w)
		}
		if len(m.AutomatedActions) != 0 {
			t.Errorf("%s: expected no automated actions", m.ID)
		}
		if !IsKnownMinistry(m.ID) {
			t.Errorf("IsKnownMinistry(%q) = false", m.ID)
		}
	}

	// callers get their own copy
	got[0].Morale = 0
	if DefaultMinistries()[0].Morale == 0 {
		t.Error("DefaultMinistries returned shared backing array")
	}
}

func TestTechnologies(t *testing.T) {
	tests := []struct {
		id       string
		cost     float64
		category state.TechCategory
	}{
		{"cyber_def", 40, state.TechMilitary},
		{"green_energy", 35, state.TechEconomic},
		{"ai_gov", 50, state.TechSocial},
		{"stealth_tech", 60, state.TechMilitary},
		{"fintech_hub", 45, state.TechEconomic},
		{"universal_edu", 30, state.TechSocial},
	}

	if n := len(Technologies()); n != len(tests) {
		t.Fatalf("expected %d technologies, got %d", len(tests), n)
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tech, ok := TechnologyByID(tt.id)
			if !ok {
				t.Fatalf("technology %q not found", tt.id)
			}
			if tech.Cost != tt.cost {
				t.Errorf("cost = %v, want %v", tech.Cost, tt.cost)
			}
			if tech.Category != tt.category {
				t.Errorf("category = %v, want %v", tech.Category, tt.category)
			}
			if tech.Name == "" || tech.Benefit == "" {
				t.Error("name and benefit must be set")
			}
		})
	}

	if _, ok := TechnologyByID("warp_drive"); ok {
		t.Error("expected unknown technology to be absent")
	}
}

func TestNewSeed(t *testing.T) {
	gs, err := NewSeed("Japonya", RoleScience)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Country != "Japonya" || gs.PlayerRole != RoleScience {
		t.Errorf("unexpected identity %q/%q", gs.Country, gs.PlayerRole)
	}
	if gs.CurrentDate != StartingDate {
		t.Errorf("date = %q, want %q", gs.CurrentDate, StartingDate)
	}
	if gs.CurrentStats != StartingStats() {
		t.Errorf("stats = %+v", gs.CurrentStats)
	}
	if gs.CurrentStats.TechPoints != 50 {
		t.Errorf("tech points = %v, want 50", gs.CurrentStats.TechPoints)
	}
	if len(gs.Ministries) != 5 || len(gs.History) != 0 {
		t.Errorf("unexpected seed shape: %d ministries, %d reports", len(gs.Ministries), len(gs.History))
	}

	_, err = NewSeed("Japonya", "İmparator")
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}
