package oracle

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/jwebster45206/modern-world/pkg/state"
)

// Placeholder text used when the oracle omits narrative fields.
const (
	DefaultSummary      = "Verileri işlerken bir sorun oluştu."
	DefaultIntelligence = "Sessiz bir dönem."
)

// Degraded result text.
const (
	DegradedSummary      = "İletişim hatlarında bir parazit var."
	DegradedIntelligence = "Veri kesildi."
	DegradedIssue        = "Sistem hatası"
)

var (
	ErrEmptyResponse = errors.New("empty oracle response")
	ErrNotJSONObject = errors.New("oracle response is not a JSON object")
)

// Decode normalizes a raw oracle payload against prev. Every field is
// optional at this boundary: lists default to empty, each stat falls back
// to its previous value and narrative fields fall back to placeholders.
// An error is returned only when the payload is not a JSON object at all.
func Decode(raw string, prev *state.GameState) (*state.TurnResult, error) {
	txt := CleanResponse(raw)
	if txt == "" {
		return nil, ErrEmptyResponse
	}
	if !gjson.Valid(txt) {
		return nil, ErrNotJSONObject
	}
	doc := gjson.Parse(txt)
	if !doc.IsObject() {
		return nil, ErrNotJSONObject
	}

	res := &state.TurnResult{
		Report: state.Report{
			Date:          str(doc.Get("date"), prev.CurrentDate),
			Location:      str(doc.Get("location"), prev.Country),
			Summary:       str(doc.Get("summary"), DefaultSummary),
			Intelligence:  str(doc.Get("intelligence"), DefaultIntelligence),
			PendingIssues: decodeIssues(doc.Get("pendingIssues")),
			StatsSnapshot: decodeStats(doc.Get("updatedStats"), prev.CurrentStats),
		},
		MinistryUpdates: decodeMinistryUpdates(doc.Get("updatedMinistries")),
		RelationUpdates: decodeRelations(doc.Get("relationsUpdate")),
	}
	res.CabinetDecisions = decodeDecisions(doc.Get("cabinetDecisions"))
	res.NPCActivity = decodeNPCActivity(doc.Get("npcActivity"))
	return res, nil
}

// Degraded is the result committed in place of a failed oracle call: the
// previous stats unchanged, no updates and a single system-failure issue.
func Degraded(prev *state.GameState) *state.TurnResult {
	return &state.TurnResult{
		Report: state.Report{
			Date:             prev.CurrentDate,
			Location:         prev.Country,
			Summary:          DegradedSummary,
			Intelligence:     DegradedIntelligence,
			PendingIssues:    []string{DegradedIssue},
			StatsSnapshot:    prev.CurrentStats,
			CabinetDecisions: []state.Decision{},
			NPCActivity:      []state.NPCActivity{},
		},
		MinistryUpdates: []state.MinistryUpdate{},
		RelationUpdates: map[string]float64{},
	}
}

func str(v gjson.Result, def string) string {
	if v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
		return v.Str
	}
	return def
}

// num reads a number, accepting numeric strings.
func num(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		return f, err == nil
	}
	return 0, false
}

func numOr(v gjson.Result, def float64) float64 {
	if f, ok := num(v); ok {
		return f
	}
	return def
}

func numPtr(v gjson.Result) *float64 {
	if f, ok := num(v); ok {
		return &f
	}
	return nil
}

func decodeIssues(v gjson.Result) []string {
	out := make([]string, 0)
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		if s := str(item, ""); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func decodeStats(v gjson.Result, prev state.Stats) state.Stats {
	if !v.IsObject() {
		return prev
	}
	return state.Stats{
		GDP:           numOr(v.Get("gdp"), prev.GDP),
		Inflation:     numOr(v.Get("inflation"), prev.Inflation),
		Unemployment:  numOr(v.Get("unemployment"), prev.Unemployment),
		BudgetBalance: numOr(v.Get("budgetBalance"), prev.BudgetBalance),
		ArmyMorale:    numOr(v.Get("armyMorale"), prev.ArmyMorale),
		PublicSupport: numOr(v.Get("publicSupport"), prev.PublicSupport),
		Stability:     numOr(v.Get("stability"), prev.Stability),
		TechPoints:    numOr(v.Get("techPoints"), prev.TechPoints),
	}
}

func decodeMinistryUpdates(v gjson.Result) []state.MinistryUpdate {
	out := make([]state.MinistryUpdate, 0)
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		id := str(item.Get("id"), "")
		if !item.IsObject() || id == "" {
			continue
		}
		u := state.MinistryUpdate{
			ID:          id,
			Morale:      numPtr(item.Get("morale")),
			BudgetShare: numPtr(item.Get("budgetShare")),
			Efficiency:  numPtr(item.Get("efficiency")),
		}
		if name := str(item.Get("ministerName"), ""); name != "" {
			u.MinisterName = &name
		}
		out = append(out, u)
	}
	return out
}

func decodeDecisions(v gjson.Result) []state.Decision {
	out := make([]state.Decision, 0)
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		title := str(item.Get("title"), "")
		if !item.IsObject() || title == "" {
			continue
		}
		d := state.Decision{
			ID:             str(item.Get("id"), uuid.NewString()),
			Title:          title,
			Description:    str(item.Get("description"), ""),
			FromMinistryID: str(item.Get("fromMinistryId"), ""),
			Options:        make([]state.DecisionOption, 0),
		}
		for _, opt := range item.Get("options").Array() {
			label := str(opt.Get("label"), "")
			if label == "" {
				continue
			}
			d.Options = append(d.Options, state.DecisionOption{
				Label:  label,
				Impact: str(opt.Get("impact"), ""),
				Action: str(opt.Get("action"), ""),
			})
		}
		out = append(out, d)
	}
	return out
}

func decodeNPCActivity(v gjson.Result) []state.NPCActivity {
	out := make([]state.NPCActivity, 0)
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		id := str(item.Get("ministerId"), "")
		action := str(item.Get("action"), "")
		if id == "" || action == "" {
			continue
		}
		out = append(out, state.NPCActivity{MinisterID: id, Action: action})
	}
	return out
}

// decodeRelations flattens [{country, score}] into a map. A plain
// {country: score} object is accepted too.
func decodeRelations(v gjson.Result) map[string]float64 {
	out := make(map[string]float64)
	switch {
	case v.IsArray():
		for _, item := range v.Array() {
			country := str(item.Get("country"), "")
			if country == "" {
				continue
			}
			out[country] = numOr(item.Get("score"), 0)
		}
	case v.IsObject():
		v.ForEach(func(key, value gjson.Result) bool {
			if key.Str != "" {
				out[key.Str] = numOr(value, 0)
			}
			return true
		})
	}
	return out
}
