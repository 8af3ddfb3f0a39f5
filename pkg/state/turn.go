package state

import (
	"maps"
	"slices"
)

// ApplyTurn folds an oracle result into prev and returns the next state.
// prev is never modified. The ministry roster, country and role are carried
// over unchanged; the oracle can only update fields of existing ministries.
func ApplyTurn(prev *GameState, res *TurnResult) *GameState {
	if prev == nil {
		return nil
	}
	next := prev.Clone()
	if res == nil {
		return next
	}

	for i := range next.Ministries {
		m := &next.Ministries[i]
		if u, ok := findMinistryUpdate(res.MinistryUpdates, m.ID); ok {
			mergeMinistry(m, u)
		}
		if act, ok := findNPCActivity(res.NPCActivity, m.ID); ok {
			m.AutomatedActions = appendBounded(m.AutomatedActions, act.Action, AutomatedActionLimit)
		}
	}

	next.CurrentDate = res.Date
	next.CurrentStats = res.StatsSnapshot

	history := make([]Report, 0, min(len(next.History)+1, HistoryLimit))
	history = append(history, res.Report.Clone())
	history = append(history, next.History...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	next.History = history

	if next.Relations == nil {
		next.Relations = make(map[string]float64, len(res.RelationUpdates))
	}
	maps.Copy(next.Relations, res.RelationUpdates)

	next.StagedDecisions = make([]StagedDecision, 0)
	return next
}

func findMinistryUpdate(updates []MinistryUpdate, id string) (MinistryUpdate, bool) {
	i := slices.IndexFunc(updates, func(u MinistryUpdate) bool { return u.ID == id })
	if i < 0 {
		return MinistryUpdate{}, false
	}
	return updates[i], true
}

func findNPCActivity(activity []NPCActivity, id string) (NPCActivity, bool) {
	i := slices.IndexFunc(activity, func(a NPCActivity) bool { return a.MinisterID == id })
	if i < 0 {
		return NPCActivity{}, false
	}
	return activity[i], true
}

func mergeMinistry(m *Ministry, u MinistryUpdate) {
	if u.MinisterName != nil {
		m.MinisterName = *u.MinisterName
	}
	if u.Morale != nil {
		m.Morale = *u.Morale
	}
	if u.BudgetShare != nil {
		m.BudgetShare = *u.BudgetShare
	}
	if u.Efficiency != nil {
		m.Efficiency = *u.Efficiency
	}
}

// appendBounded appends v and keeps only the last limit entries.
func appendBounded(list []string, v string, limit int) []string {
	out := append(slices.Clone(list), v)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
