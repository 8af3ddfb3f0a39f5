package state

import "slices"

// DecisionOption is one labeled choice of a Decision.
type DecisionOption struct {
	Label  string `json:"label" yaml:"label"`
	Impact string `json:"impact" yaml:"impact"`
	Action string `json:"action" yaml:"action"` // opaque token echoed back to the oracle
}

// Decision is a cabinet proposal. Only its resolution survives the turn,
// as a StagedDecision.
type Decision struct {
	ID             string           `json:"id" yaml:"id"`
	Title          string           `json:"title" yaml:"title"`
	Description    string           `json:"description" yaml:"description"`
	FromMinistryID string           `json:"from_ministry_id" yaml:"from_ministry_id"`
	Options        []DecisionOption `json:"options" yaml:"options"`
}

// NPCActivity is an action a non-player ministry took on its own.
type NPCActivity struct {
	MinisterID string `json:"minister_id" yaml:"minister_id"`
	Action     string `json:"action" yaml:"action"`
}

// Report is the immutable summary of one turn.
type Report struct {
	Date             string        `json:"date" yaml:"date"`
	Location         string        `json:"location" yaml:"location"`
	Summary          string        `json:"summary" yaml:"summary"`
	Intelligence     string        `json:"intelligence" yaml:"intelligence"`
	PendingIssues    []string      `json:"pending_issues" yaml:"pending_issues"`
	StatsSnapshot    Stats         `json:"stats_snapshot" yaml:"stats_snapshot"`
	CabinetDecisions []Decision    `json:"cabinet_decisions,omitempty" yaml:"cabinet_decisions,omitempty"`
	NPCActivity      []NPCActivity `json:"npc_activity,omitempty" yaml:"npc_activity,omitempty"`
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	r.PendingIssues = slices.Clone(r.PendingIssues)
	r.NPCActivity = slices.Clone(r.NPCActivity)
	if r.CabinetDecisions != nil {
		decisions := make([]Decision, len(r.CabinetDecisions))
		for i, d := range r.CabinetDecisions {
			d.Options = slices.Clone(d.Options)
			decisions[i] = d
		}
		r.CabinetDecisions = decisions
	}
	return r
}
