package prompts

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
)

func TestGetStatePrompt(t *testing.T) {
	gs, err := catalog.NewSeed("Türkiye", catalog.RolePresident)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	gs = state.StageDecision(gs, "Vergi Reformu", "Kademeli")

	got, err := GetStatePrompt(gs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "MEVCUT DURUM: ") {
		t.Fatalf("unexpected prefix: %q", got)
	}

	var ps map[string]any
	if err := json.Unmarshal([]byte(strings.TrimPrefix(got, "MEVCUT DURUM: ")), &ps); err != nil {
		t.Fatalf("state prompt is not JSON: %v", err)
	}
	for _, key := range []string{"stats", "role", "country", "date", "techs", "stagedDecisions"} {
		if _, ok := ps[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	stats := ps["stats"].(map[string]any)
	if stats["budgetBalance"] != float64(-10) || stats["techPoints"] != float64(50) {
		t.Errorf("unexpected stats %v", stats)
	}
	if _, ok := ps["history"]; ok {
		t.Error("history must not be sent")
	}
	staged := ps["stagedDecisions"].([]any)
	if len(staged) != 1 {
		t.Fatalf("expected 1 staged decision, got %d", len(staged))
	}
	if techs := ps["techs"].([]any); len(techs) != 0 {
		t.Errorf("expected empty techs, got %v", techs)
	}
}

func TestGetStatePrompt_NilState(t *testing.T) {
	if _, err := GetStatePrompt(nil); err == nil {
		t.Error("expected error for nil state")
	}
}
