// Package decision provides DecisionHeuristic implementations for
// sat.Engine: TrivialHeuristic, the spec's mandated default, and VSIDS,
// an opt-in alternative adapted from the teacher's scored variable
// ordering.
package decision

import "github.com/nikgaevoy/yass/sat"

// TrivialHeuristic decides the first unassigned variable true, in
// variable-index order. It is the spec's default decision heuristic,
// grounded on original_source/src/cdcl/decision.rs's
// DecideFirstVariable: no bookkeeping on decide, propagate or
// backtrack, an O(n) scan on every decision.
type TrivialHeuristic struct{}

// Decide implements sat.DecisionHeuristic.
func (TrivialHeuristic) Decide(formula sat.Formula, trail *sat.Trail) (sat.Literal, bool) {
	for v := 0; v < trail.NumVariables(); v++ {
		if trail.Assignment[v].IsUnset() {
			return sat.PositiveLiteral(sat.Variable(v)), true
		}
	}
	return 0, false
}

// BacktrackAndAddClause implements sat.DecisionHeuristic; TrivialHeuristic
// carries no state to prune.
func (TrivialHeuristic) BacktrackAndAddClause(formula sat.Formula, trail *sat.Trail, backLevel int, clauseID sat.ClauseID) {
}

// PropagateLiteral implements sat.DecisionHeuristic.
func (TrivialHeuristic) PropagateLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal, reasonID sat.ClauseID) {
}

// DecideLiteral implements sat.DecisionHeuristic.
func (TrivialHeuristic) DecideLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal) {
}
