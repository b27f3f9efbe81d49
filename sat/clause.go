package sat

// Clause is an ordered sequence of literals. The order is not semantic
// but must be preserved for watched-literal stability: the engine
// watches the first two unassigned literals it finds in this order.
type Clause []Literal

// Formula is an ordered, append-only sequence of clauses. Clause
// identities are stable indices into a Formula; nothing is ever
// removed, so learned clauses can be appended freely during solving.
type Formula []Clause

// ClauseID identifies a clause by its stable index into a Formula.
type ClauseID int

// IsSatisfying reports whether every clause of the formula has at
// least one literal satisfied under assignment, where assignment[v]
// gives the boolean value of variable v.
func IsSatisfying(formula Formula, assignment []bool) bool {
	for _, clause := range formula {
		ok := false
		for _, l := range clause {
			if assignment[l.Variable()] == l.IsPositive() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
