package sat

// VariableStateKind tags the variant held by a VariableState.
type VariableStateKind uint8

const (
	Unset VariableStateKind = iota
	VarFalse
	VarTrue
)

// VariableState is a tagged variant: Unset, False(level) or
// True(level). The level records the decision level at which the
// variable was assigned.
type VariableState struct {
	Kind  VariableStateKind
	Level int
}

// IsUnset reports whether the variable has not been assigned.
func (s VariableState) IsUnset() bool { return s.Kind == Unset }

// IsTrue reports whether the variable is assigned true.
func (s VariableState) IsTrue() bool { return s.Kind == VarTrue }

// IsFalse reports whether the variable is assigned false.
func (s VariableState) IsFalse() bool { return s.Kind == VarFalse }

// BoolValue returns the boolean value of an assigned variable. It
// panics if the variable is unset.
func (s VariableState) BoolValue() bool {
	switch s.Kind {
	case VarTrue:
		return true
	case VarFalse:
		return false
	default:
		panic("sat: boolean value of unset variable")
	}
}

// DecisionLevel returns the decision level at which the variable was
// assigned. It panics if the variable is unset.
func (s VariableState) DecisionLevel() int {
	if s.Kind == Unset {
		panic("sat: decision level of unset variable")
	}
	return s.Level
}

func stateFromBool(value bool, level int) VariableState {
	if value {
		return VariableState{Kind: VarTrue, Level: level}
	}
	return VariableState{Kind: VarFalse, Level: level}
}

// ClauseStatusKind tags the variant held by a ClauseStatus.
type ClauseStatusKind uint8

const (
	// StatusUnwatched is the initial status, never observed after
	// preprocessing.
	StatusUnwatched ClauseStatusKind = iota
	// StatusSatisfied means some literal of the clause is true.
	StatusSatisfied
	// StatusFalsified means all literals of the clause are false.
	StatusFalsified
	// StatusUnit means exactly one literal is unassigned; it forces
	// that literal (stored in A).
	StatusUnit
	// StatusWatched means the clause has (at least) two unassigned
	// literals, A and B, that are watched.
	StatusWatched
)

// ClauseStatus is a tagged variant describing a clause's current
// relationship to the assignment: Unwatched | Satisfied | Falsified |
// Unit(A) | Watched(A, B).
type ClauseStatus struct {
	Kind ClauseStatusKind
	A, B Literal
}

// UnwatchedStatus returns the initial ClauseStatus.
func UnwatchedStatus() ClauseStatus { return ClauseStatus{Kind: StatusUnwatched} }

// SatisfiedStatus returns a Satisfied ClauseStatus.
func SatisfiedStatus() ClauseStatus { return ClauseStatus{Kind: StatusSatisfied} }

// FalsifiedStatus returns a Falsified ClauseStatus.
func FalsifiedStatus() ClauseStatus { return ClauseStatus{Kind: StatusFalsified} }

// UnitStatus returns a Unit(lit) ClauseStatus.
func UnitStatus(lit Literal) ClauseStatus { return ClauseStatus{Kind: StatusUnit, A: lit} }

// WatchedStatus returns a Watched(a, b) ClauseStatus.
func WatchedStatus(a, b Literal) ClauseStatus {
	return ClauseStatus{Kind: StatusWatched, A: a, B: b}
}

// Reason is the antecedent of a propagated literal: the index of the
// clause that forced it. A decision literal has no reason.
type Reason struct {
	ClauseID ClauseID
	HasClause bool
}

// DecisionReason is the zero Reason: no antecedent clause.
func DecisionReason() Reason { return Reason{} }

// PropagatedReason wraps the antecedent clause id.
func PropagatedReason(id ClauseID) Reason { return Reason{ClauseID: id, HasClause: true} }

// LevelEntry is one (variable, reason) pair recorded in a trail level.
type LevelEntry struct {
	Var    Variable
	Reason Reason
}

// Trail holds the per-solver mutable state: the assignment, the
// decision levels, the clause statuses and the watch-lists.
//
// Invariants (see spec):
//   - I1: for every clause with status Watched(a,b), both a and b
//     appear in the watch-list indexed by (variable_of(a), positive(a))
//     and symmetrically for b.
//   - I2: a variable is in levels[k] iff its assignment level equals k.
//   - I3: levels[0] holds unit-propagated literals from top-level;
//     levels[k] for k>=1 begins with a single decision literal.
//   - I4: if a literal's antecedent is Unit or Watched containing it,
//     all other literals of that clause were false at propagation time.
//   - I5: no variable appears twice across levels.
type Trail struct {
	Assignment   []VariableState
	Levels       [][]LevelEntry
	ClauseStatus []ClauseStatus

	// Watches[v][0] holds clauses watching the positive literal of v;
	// Watches[v][1] holds clauses watching the negative literal.
	Watches [][2][]ClauseID
}

// NewTrail creates a trail with capacity for n variables and m initial
// clauses. It grows only by appending levels, assignments within the
// current level, and watch entries; backjumping truncates levels and
// resets popped variables to Unset.
func NewTrail(n int, m int) *Trail {
	t := &Trail{
		Assignment:   make([]VariableState, n),
		Levels:       make([][]LevelEntry, 1, 8),
		ClauseStatus: make([]ClauseStatus, m),
		Watches:      make([][2][]ClauseID, n),
	}
	return t
}

// TopLevel returns the index of the current (top) decision level.
func (t *Trail) TopLevel() int {
	return len(t.Levels) - 1
}

// Decide appends a new level containing (variable_of(literal), none)
// and assigns the literal's variable to the literal's polarity at the
// new top level.
func (t *Trail) Decide(literal Literal) {
	v := literal.Variable()
	level := len(t.Levels)
	t.Assignment[v] = stateFromBool(literal.IsPositive(), level)
	t.Levels = append(t.Levels, []LevelEntry{{Var: v, Reason: DecisionReason()}})
}

// Propagate assigns literal's variable at the current top level and
// records reasonID as its antecedent.
func (t *Trail) Propagate(literal Literal, reasonID ClauseID) {
	v := literal.Variable()
	level := t.TopLevel()
	t.Assignment[v] = stateFromBool(literal.IsPositive(), level)
	top := &t.Levels[level]
	*top = append(*top, LevelEntry{Var: v, Reason: PropagatedReason(reasonID)})
}

// AddWatch appends clauseID to the watch-list of literal.
func (t *Trail) AddWatch(literal Literal, clauseID ClauseID) {
	polarity := 0
	if !literal.IsPositive() {
		polarity = 1
	}
	v := literal.Variable()
	t.Watches[v][polarity] = append(t.Watches[v][polarity], clauseID)
}

// ToLiteral returns the signed literal consistent with the current
// assignment of variable v. It panics if v is unset.
func (t *Trail) ToLiteral(v Variable) Literal {
	if t.Assignment[v].BoolValue() {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// Backjump truncates levels[level+1:] and resets the popped variables
// to Unset, returning the popped entries in trail order (oldest
// first) so that callers (decision heuristics, conflict analyzers)
// can react to the variables being released.
func (t *Trail) Backjump(level int) []LevelEntry {
	var popped []LevelEntry
	for l := len(t.Levels) - 1; l > level; l-- {
		popped = append(t.Levels[l], popped...)
	}
	for _, e := range popped {
		t.Assignment[e.Var] = VariableState{}
	}
	t.Levels = t.Levels[:level+1]
	return popped
}

// NumVariables returns the number of variables the trail was created
// with.
func (t *Trail) NumVariables() int {
	return len(t.Assignment)
}
