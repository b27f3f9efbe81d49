package decision

import (
	"github.com/rhartert/yagh"

	"github.com/nikgaevoy/yass/sat"
)

// VSIDS is the variable-state-independent-decaying-sum heuristic: an
// opt-in alternative to TrivialHeuristic (the spec's Non-goals exclude
// it from the default path, but it is the teacher's actual decision
// heuristic and is worth carrying as a selectable mode). Adapted from
// internal/sat/ordering.go's VarOrder: the same yagh.IntMap max-score
// heap, the same bump/decay/rescale scheme, and the same phase-saving
// idea. Unlike VarOrder, which the teacher grows incrementally via
// AddVar as the solver learns about new variables, VSIDS here is sized
// up front by NewVSIDS(n) since this module's Formula is fixed before
// Solve begins; and since Trail.Backjump already resets a released
// variable's VariableState to Unset before any DecisionHeuristic
// method observes it, phase saving is recorded on assignment
// (DecideLiteral, PropagateLiteral) rather than on release.
type VSIDS struct {
	order *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	phases      []bool
	havePhase   []bool
	phaseSaving bool
}

// NewVSIDS returns a VSIDS heuristic for n variables. decay is the
// score decay factor in (0, 1]; phaseSaving, when true, makes Decide
// prefer the polarity a variable last held before being unassigned.
func NewVSIDS(n int, decay float64, phaseSaving bool) *VSIDS {
	v := &VSIDS{
		order:       yagh.New[float64](0),
		scores:      make([]float64, n),
		scoreInc:    1,
		scoreDecay:  decay,
		phases:      make([]bool, n),
		havePhase:   make([]bool, n),
		phaseSaving: phaseSaving,
	}
	v.order.GrowBy(n)
	for i := 0; i < n; i++ {
		v.order.Put(i, 0)
	}
	return v
}

// Decide implements sat.DecisionHeuristic: pop the highest-scoring
// still-unassigned variable and decide it true or false according to
// its saved phase (true, if phase saving is off or the variable has
// never been assigned).
func (v *VSIDS) Decide(formula sat.Formula, trail *sat.Trail) (sat.Literal, bool) {
	for {
		next, ok := v.order.Pop()
		if !ok {
			return 0, false
		}
		variable := sat.Variable(next.Elem)
		if !trail.Assignment[variable].IsUnset() {
			continue
		}
		if v.phaseSaving && v.havePhase[variable] && !v.phases[variable] {
			return sat.NegativeLiteral(variable), true
		}
		return sat.PositiveLiteral(variable), true
	}
}

func (v *VSIDS) decayScores() {
	v.scoreInc /= v.scoreDecay
	if v.scoreInc > 1e100 {
		v.rescale()
	}
}

func (v *VSIDS) bumpScore(variable sat.Variable) {
	v.scores[variable] += v.scoreInc
	if v.order.Contains(int(variable)) {
		v.order.Put(int(variable), -v.scores[variable])
	}
	if v.scores[variable] > 1e100 {
		v.rescale()
	}
}

func (v *VSIDS) rescale() {
	v.scoreInc *= 1e-100
	for variable, s := range v.scores {
		v.scores[variable] = s * 1e-100
		if v.order.Contains(variable) {
			v.order.Put(variable, -v.scores[variable])
		}
	}
}

func (v *VSIDS) recordPhase(literal sat.Literal) {
	if !v.phaseSaving {
		return
	}
	variable := literal.Variable()
	v.phases[variable] = literal.IsPositive()
	v.havePhase[variable] = true
}

// reinsertReleased scans for variables the last backjump unset that
// fell out of the heap (every variable Decide popped, since Pop
// removes it) and puts them back as candidates. It is O(n) per
// conflict; VarOrder avoids this by having the solver call Reinsert
// explicitly for each released variable, which this module's Engine
// does not expose (Trail.Backjump already discards the popped
// entries by the time BacktrackAndAddClause runs).
func (v *VSIDS) reinsertReleased(trail *sat.Trail) {
	for variable := 0; variable < len(v.scores); variable++ {
		if trail.Assignment[variable].IsUnset() && !v.order.Contains(variable) {
			v.order.Put(variable, -v.scores[variable])
		}
	}
}

// BacktrackAndAddClause implements sat.DecisionHeuristic: decays all
// scores, bumps every variable of the newly learned clause (the usual
// VSIDS "reward variables involved in the conflict" rule), and
// reinserts every variable the backjump released.
func (v *VSIDS) BacktrackAndAddClause(formula sat.Formula, trail *sat.Trail, backLevel int, clauseID sat.ClauseID) {
	v.decayScores()
	for _, l := range formula[clauseID] {
		v.bumpScore(l.Variable())
	}
	v.reinsertReleased(trail)
}

// PropagateLiteral implements sat.DecisionHeuristic.
func (v *VSIDS) PropagateLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal, reasonID sat.ClauseID) {
	v.recordPhase(literal)
}

// DecideLiteral implements sat.DecisionHeuristic.
func (v *VSIDS) DecideLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal) {
	v.recordPhase(literal)
}
