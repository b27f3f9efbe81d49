// Package analysis provides the two ConflictAnalyzer implementations a
// sat.Engine can be driven with: the classical First-UIP resolution
// walk (FirstUIP) and the minimum-cut family (MinCut and its seven
// weight heuristics).
package analysis

import "github.com/nikgaevoy/yass/sat"

// FirstUIP learns a clause by resolving the conflicting clause against
// antecedent clauses along the trail of the conflict's decision level,
// walking backward from the most recently assigned variable, until
// only one literal from that level remains marked (the asserting
// literal, or UIP). It never inspects earlier levels directly: their
// literals enter the learned clause only as resolution byproducts.
type FirstUIP struct {
	marked []bool
}

// NewFirstUIP returns a FirstUIP analyzer for a formula over n
// variables.
func NewFirstUIP(n int) *FirstUIP {
	return &FirstUIP{marked: make([]bool, n)}
}

// AnalyzeConflict implements sat.ConflictAnalyzer.
func (f *FirstUIP) AnalyzeConflict(formula sat.Formula, trail *sat.Trail, conflict sat.Clause) sat.Clause {
	for _, l := range conflict {
		f.marked[l.Variable()] = true
	}

	level := trail.Levels[trail.TopLevel()]

	for i := len(level) - 1; ; i-- {
		entry := level[i]
		uip := entry.Var

		if !f.marked[uip] {
			continue
		}

		moreMarkedAbove := false
		for j := i - 1; j >= 0; j-- {
			if f.marked[level[j].Var] {
				moreMarkedAbove = true
				break
			}
		}

		if moreMarkedAbove {
			reasonClause := formula[entry.Reason.ClauseID]
			for _, l := range reasonClause {
				v := l.Variable()
				if !f.marked[v] {
					f.marked[v] = true
					conflict = append(conflict, l)
				}
			}
			f.marked[uip] = false
			continue
		}

		out := conflict[:0]
		for _, l := range conflict {
			v := l.Variable()
			if f.marked[v] {
				f.marked[v] = false
				out = append(out, l)
			}
		}
		return out
	}
}

// BacktrackAndAddClause implements sat.ConflictAnalyzer. FirstUIP keeps
// no state across conflicts, so there is nothing to do here.
func (f *FirstUIP) BacktrackAndAddClause(formula sat.Formula, trail *sat.Trail, backLevel int, clauseID sat.ClauseID) {
}

// PropagateLiteral implements sat.ConflictAnalyzer. No-op for the same
// reason as BacktrackAndAddClause.
func (f *FirstUIP) PropagateLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal, reasonID sat.ClauseID) {
}

// DecideLiteral implements sat.ConflictAnalyzer. No-op for the same
// reason as BacktrackAndAddClause.
func (f *FirstUIP) DecideLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal) {
}
