package state

// MinistryUpdate is a partial update for an existing ministry. Nil fields
// leave the current value untouched.
type MinistryUpdate struct {
	ID           string   `json:"id" yaml:"id"`
	MinisterName *string  `json:"minister_name,omitempty" yaml:"minister_name,omitempty"`
	Morale       *float64 `json:"morale,omitempty" yaml:"morale,omitempty"`
	BudgetShare  *float64 `json:"budget_share,omitempty" yaml:"budget_share,omitempty"`
	Efficiency   *float64 `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u MinistryUpdate) IsEmpty() bool {
	return u.MinisterName == nil && u.Morale == nil && u.BudgetShare == nil && u.Efficiency == nil
}

// TurnResult is a normalized oracle result, ready for ApplyTurn. Every
// field has already been defaulted; nothing in it is optional to the reducer.
type TurnResult struct {
	Report          `yaml:",inline"`
	MinistryUpdates []MinistryUpdate   `json:"ministry_updates" yaml:"ministry_updates"`
	RelationUpdates map[string]float64 `json:"relation_updates" yaml:"relation_updates"`
}

// IsEmpty reports whether the result carries no deltas beyond the report.
func (tr *TurnResult) IsEmpty() bool {
	return tr == nil || (len(tr.MinistryUpdates) == 0 &&
		len(tr.RelationUpdates) == 0 &&
		len(tr.NPCActivity) == 0 &&
		len(tr.CabinetDecisions) == 0)
}
