package sat

import "time"

// Options configures an Engine beyond its decision heuristic and
// conflict analyzer, grounded verbatim on the teacher's
// internal/sat/solver.go Options/DefaultOptions: ClauseDecay has no
// referent in this module (it only ever fed the teacher's ReduceDB
// clause-deletion path, a Non-goal here, so there is nothing to decay)
// but VariableDecay, MaxConflicts, Timeout and PhaseSaving all carry
// over, MaxConflicts and Timeout now enforced directly by Engine.Solve.
type Options struct {
	// VariableDecay is the decay factor sat/decision.VSIDS should use
	// when constructed for this engine; it has no effect with
	// TrivialHeuristic.
	VariableDecay float64

	// MaxConflicts stops Solve and returns Unknown once this many
	// conflicts have been recorded. A negative value means unbounded.
	MaxConflicts int64

	// Timeout stops Solve and returns Unknown once this much wall time
	// has elapsed since Solve was called. A negative value means
	// unbounded.
	Timeout time.Duration

	// PhaseSaving is read by callers constructing a sat/decision.VSIDS
	// for this engine; TrivialHeuristic ignores it.
	PhaseSaving bool
}

// DefaultOptions mirrors the teacher's own defaults: no conflict or
// time bound, phase saving off.
var DefaultOptions = Options{
	VariableDecay: 0.95,
	MaxConflicts:  -1,
	Timeout:       -1,
	PhaseSaving:   false,
}
