package sat

import (
	"fmt"
	"time"
)

// ConflictAnalyzer is the capability a conflict-analysis strategy must
// implement. There are two implementations in this module: the
// classical First-UIP resolution walk (sat/analysis.FirstUIP) and the
// minimum-cut family (sat/analysis.MinCut). Both are driven by the
// engine at the points named below; the engine stays the sole mutator
// of the trail and formula, so analyzers only observe them.
type ConflictAnalyzer interface {
	// AnalyzeConflict is invoked with the falsified clause that caused
	// the conflict. It returns a learned clause whose literals are all
	// currently falsified (P3): the engine derives the asserting (UIP)
	// literal itself by taking the literal at the deepest decision
	// level (spec's canonicalized recomputation, see DESIGN.md).
	AnalyzeConflict(formula Formula, trail *Trail, conflict Clause) Clause

	// BacktrackAndAddClause is called right after the engine has
	// backjumped to backLevel and appended the learned clause as
	// clauseID, so the analyzer can prune its own bookkeeping (e.g.
	// the mincut analyzer's implication graph) to match the truncated
	// trail.
	BacktrackAndAddClause(formula Formula, trail *Trail, backLevel int, clauseID ClauseID)

	// PropagateLiteral is called whenever the engine propagates literal
	// with antecedent clause reasonID, before the trail is examined
	// again.
	PropagateLiteral(formula Formula, trail *Trail, literal Literal, reasonID ClauseID)

	// DecideLiteral is called whenever the engine makes a decision.
	DecideLiteral(formula Formula, trail *Trail, literal Literal)
}

// DecisionHeuristic is the capability that picks the next decision
// literal. The default (sat/decision.TrivialHeuristic) simply returns
// the first unassigned variable; sat/decision.VSIDS is provided as a
// non-default alternative.
type DecisionHeuristic interface {
	// Decide returns the next literal to assign by decision, or ok ==
	// false when every variable is already assigned.
	Decide(formula Formula, trail *Trail) (literal Literal, ok bool)

	BacktrackAndAddClause(formula Formula, trail *Trail, backLevel int, clauseID ClauseID)
	PropagateLiteral(formula Formula, trail *Trail, literal Literal, reasonID ClauseID)
	DecideLiteral(formula Formula, trail *Trail, literal Literal)
}

// Verdict is the result of Engine.Solve.
type Verdict int

const (
	Unsat Verdict = iota
	Sat
	// Unknown is returned when Solve stops early because Options'
	// MaxConflicts or Timeout bound was reached before a verdict was
	// found, mirroring the teacher's Options.MaxConflicts/Timeout.
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "SAT"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNSAT"
	}
}

// Engine is the CDCL solver: decision/propagation loop with
// two-watched-literal unit propagation, a chronological trail with
// decision levels, non-chronological backjumping, and learned-clause
// insertion. The engine owns the trail and the formula for the
// duration of Solve and is the sole mutator of both (spec §5).
type Engine struct {
	Formula  Formula
	trail    *Trail
	analyzer ConflictAnalyzer
	decision DecisionHeuristic
	opts     Options

	// Trace, if non-nil, receives a line per decision, propagation and
	// conflict. Grounded on etsangsplk-go-sat's Trace/Tracer fields.
	Trace Tracer

	// Search statistics, reported the way yass's internal/sat/solver.go
	// reports them (conflicts, iterations), smoothed through an EMA.
	TotalConflicts  int64
	TotalIterations int64
	conflictRateEMA EMA

	// Models accumulates a copy of Assignment() every time Solve
	// returns Sat, mirroring the teacher's Solver.Models/saveModel.
	// Combined with ForbidModel it supports enumerating every model of
	// a small instance; SolveAll does this, appending
	// ForbidModel(e.Assignment()) to e.Formula and rebuilding the trail
	// before each further Solve, until Unsat. Calling Solve again on
	// the same trail after appending a clause is not supported.
	Models [][]bool
}

// NewEngine creates an Engine for a formula over n variables, using
// opts to bound the search (Options.MaxConflicts, Options.Timeout).
// The formula is taken by reference: learned clauses are appended to
// it in place, matching the teacher's "mutably borrowed formula"
// ownership.
func NewEngine(n int, formula Formula, decision DecisionHeuristic, analyzer ConflictAnalyzer, opts Options) *Engine {
	return &Engine{
		Formula:         formula,
		trail:           NewTrail(n, len(formula)),
		analyzer:        analyzer,
		decision:        decision,
		opts:            opts,
		conflictRateEMA: NewEMA(0.95),
	}
}

// Trail exposes the engine's trail for read-only inspection (tests,
// CLI reporting).
func (e *Engine) Trail() *Trail { return e.trail }

// Assignment returns the current boolean value of every variable. It
// is meaningful only after Solve has returned Sat.
func (e *Engine) Assignment() []bool {
	out := make([]bool, e.trail.NumVariables())
	for v, s := range e.trail.Assignment {
		out[v] = s.IsTrue()
	}
	return out
}

func (e *Engine) tracef(format string, args ...any) {
	if e.Trace != nil {
		e.Trace.Printf(format, args...)
	}
}

// classifyClause computes a ClauseStatus for clause by scanning its
// literals once under the current assignment. hint, when non-nil, is a
// literal already known to be the "other watch" — passing it lets
// classifyClause short-circuit satisfaction detection the way the
// spec's classify_clause(clause, hint_literal) does, without changing
// the result.
func (e *Engine) classifyClause(clause Clause, hint *Literal) ClauseStatus {
	if hint != nil {
		switch e.litValue(*hint) {
		case VarTrue:
			return SatisfiedStatus()
		}
	}

	unassigned := [2]Literal{}
	count := 0

	for _, l := range clause {
		switch e.trail.Assignment[l.Variable()].Kind {
		case Unset:
			if count < 2 {
				unassigned[count] = l
			}
			count++
		case VarTrue:
			if l.IsPositive() {
				return SatisfiedStatus()
			}
		case VarFalse:
			if !l.IsPositive() {
				return SatisfiedStatus()
			}
		}
	}

	switch {
	case count == 0:
		return FalsifiedStatus()
	case count == 1:
		return UnitStatus(unassigned[0])
	default:
		return WatchedStatus(unassigned[0], unassigned[1])
	}
}

// litValue reports the lifted truth value of a literal: VarTrue if the
// literal is currently satisfied, VarFalse if currently falsified,
// Unset if the underlying variable is unassigned.
func (e *Engine) litValue(l Literal) VariableStateKind {
	s := e.trail.Assignment[l.Variable()]
	if s.Kind == Unset {
		return Unset
	}
	if s.IsTrue() == l.IsPositive() {
		return VarTrue
	}
	return VarFalse
}

// preprocessClauses computes the initial ClauseStatus of every clause
// in the formula, wiring watch-lists for Watched clauses and
// propagating Unit clauses immediately. It returns false if a clause
// is Falsified at level 0 (immediate UNSAT).
func (e *Engine) preprocessClauses() bool {
	for i := 0; i < len(e.Formula); i++ {
		id := ClauseID(i)
		status := e.classifyClause(e.Formula[id], nil)
		e.trail.ClauseStatus[id] = status

		switch status.Kind {
		case StatusSatisfied:
		case StatusFalsified:
			return false
		case StatusUnit:
			e.propagateLiteral(status.A, id)
		case StatusWatched:
			e.trail.AddWatch(status.A, id)
			e.trail.AddWatch(status.B, id)
		default:
			panic("sat: unreachable clause status during preprocessing")
		}
	}
	return true
}

func (e *Engine) propagateLiteral(literal Literal, reasonID ClauseID) {
	e.trail.Propagate(literal, reasonID)
	e.decision.PropagateLiteral(e.Formula, e.trail, literal, reasonID)
	e.analyzer.PropagateLiteral(e.Formula, e.trail, literal, reasonID)
	e.tracef("propagate %s (clause %d)", literal, reasonID)
}

// processUnitClauses drains the current top level's pending
// assignments, rewatching clauses as literals become falsified, until
// the level reaches a fixpoint or a clause is falsified. On conflict it
// invokes the conflict analyzer, backjumps, inserts the learned
// clause, propagates its asserting literal, and restarts scanning the
// (now truncated) top level, exactly as spec §4.2 describes.
//
// It returns false if a conflict occurs at level 0 (UNSAT).
func (e *Engine) processUnitClauses() bool {
	conflicts := 0
unitVariables:
	for {
		top := e.trail.TopLevel()
		variableIndex := 0

		for variableIndex < len(e.trail.Levels[top]) {
			variable := e.trail.Levels[top][variableIndex].Var
			variableIndex++

			value := e.trail.Assignment[variable].BoolValue()
			falsifiedLiteral := e.trail.ToLiteral(variable).Opposite()

			// The watch-list indexed by the polarity that just became
			// falsified: if the variable went true, its negative
			// literal (index 1) is now falsified, and vice versa.
			polarity := 0
			if value {
				polarity = 1
			}

			watchIndex := 0
			for watchIndex < len(e.trail.Watches[variable][polarity]) {
				clauseID := e.trail.Watches[variable][polarity][watchIndex]
				status := e.trail.ClauseStatus[clauseID]

				a, b := status.A, status.B
				if a != falsifiedLiteral && b != falsifiedLiteral {
					// Stale watch entry from an earlier rewatch:
					// swap-remove and continue without advancing.
					ws := e.trail.Watches[variable][polarity]
					ws[watchIndex] = ws[len(ws)-1]
					e.trail.Watches[variable][polarity] = ws[:len(ws)-1]
					continue
				}
				watchIndex++

				other := a ^ b ^ falsifiedLiteral

				newStatus := e.classifyClause(e.Formula[clauseID], &other)
				switch newStatus.Kind {
				case StatusSatisfied:
				case StatusFalsified:
					if e.trail.TopLevel() == 0 {
						return false
					}

					e.TotalConflicts++
					conflicts++
					e.tracef("conflict in clause %d at level %d", clauseID, e.trail.TopLevel())

					learned := e.analyzer.AnalyzeConflict(e.Formula, e.trail, append(Clause(nil), e.Formula[clauseID]...))
					uip := e.uipLiteral(learned)
					newClauseID := e.backtrackAndAddUIPClause(learned, uip)

					e.propagateLiteral(uip, newClauseID)

					// Restart the scan at the (now truncated) top level
					// so the just-asserted UIP literal is visited.
					continue unitVariables
				case StatusUnit:
					e.propagateLiteral(newStatus.A, clauseID)
				case StatusWatched:
					e.trail.ClauseStatus[clauseID] = newStatus
					if newStatus.A != falsifiedLiteral {
						e.trail.AddWatch(newStatus.A, clauseID)
					}
					e.trail.AddWatch(newStatus.B, clauseID)
				default:
					panic("sat: unreachable clause status during propagation")
				}
			}
		}

		e.conflictRateEMA.Add(float64(conflicts))
		return true
	}
}

// uipLiteral recomputes the asserting literal of a learned clause as
// the literal at the deepest decision level, canonicalizing on the
// spec's second First-UIP variant (spec §9's Open Question).
func (e *Engine) uipLiteral(clause Clause) Literal {
	best := clause[0]
	bestLevel := e.trail.Assignment[best.Variable()].DecisionLevel()
	for _, l := range clause[1:] {
		level := e.trail.Assignment[l.Variable()].DecisionLevel()
		if level > bestLevel {
			best = l
			bestLevel = level
		}
	}
	return best
}

// backtrackAndAddUIPClause implements spec §4.3: choose the backjump
// level as the second-highest decision level among the learned
// clause's literals (0 if the clause is unit after removing the UIP),
// truncate the trail, and insert the clause watched on (second
// deepest, uip) or as Unit(uip) if none remain. uip must be the
// literal returned by uipLiteral(clause), computed by the caller
// before any backjump: the trail still has the decision levels needed
// to tell it apart from the other literals, which it no longer does
// once Backjump below resets the conflict-level variable to Unset.
func (e *Engine) backtrackAndAddUIPClause(clause Clause, uip Literal) ClauseID {
	backLevel := 0
	secondDeepestFound := false
	var secondDeepest Literal
	for _, l := range clause {
		if l == uip {
			continue
		}
		level := e.trail.Assignment[l.Variable()].DecisionLevel()
		if !secondDeepestFound || level > e.trail.Assignment[secondDeepest.Variable()].DecisionLevel() {
			secondDeepest = l
			secondDeepestFound = true
		}
		if level > backLevel {
			backLevel = level
		}
	}

	e.trail.Backjump(backLevel)

	newClauseID := ClauseID(len(e.Formula))
	e.Formula = append(e.Formula, clause)
	e.trail.ClauseStatus = append(e.trail.ClauseStatus, ClauseStatus{})

	if secondDeepestFound {
		e.trail.ClauseStatus[newClauseID] = WatchedStatus(secondDeepest, uip)
		e.trail.AddWatch(secondDeepest, newClauseID)
		e.trail.AddWatch(uip, newClauseID)
	} else {
		e.trail.ClauseStatus[newClauseID] = UnitStatus(uip)
	}

	e.decision.BacktrackAndAddClause(e.Formula, e.trail, backLevel, newClauseID)
	e.analyzer.BacktrackAndAddClause(e.Formula, e.trail, backLevel, newClauseID)

	e.tracef("learned clause %d (backjump to level %d): %v", newClauseID, backLevel, clause)

	return newClauseID
}

// Solve runs the engine to completion: Unsat if no assignment exists,
// Sat if one was found (retrievable via Assignment()).
func (e *Engine) Solve() Verdict {
	if !e.preprocessClauses() {
		return Unsat
	}

	start := time.Now()

	for {
		e.TotalIterations++

		if e.opts.MaxConflicts >= 0 && e.TotalConflicts >= e.opts.MaxConflicts {
			return Unknown
		}
		if e.opts.Timeout >= 0 && time.Since(start) >= e.opts.Timeout {
			return Unknown
		}

		if !e.processUnitClauses() {
			return Unsat
		}

		literal, ok := e.decision.Decide(e.Formula, e.trail)
		if !ok {
			e.Models = append(e.Models, e.Assignment())
			return Sat
		}

		e.trail.Decide(literal)
		e.decision.DecideLiteral(e.Formula, e.trail, literal)
		e.analyzer.DecideLiteral(e.Formula, e.trail, literal)
		e.tracef("decide %s (level %d)", literal, e.trail.TopLevel())
	}
}

// ConflictRate returns the EMA-smoothed conflicts-per-iteration rate,
// for search-statistics reporting.
func (e *Engine) ConflictRate() float64 {
	return e.conflictRateEMA.Val()
}

// SolveAll repeatedly solves the formula, forbidding each model found
// until the formula becomes unsatisfiable, and returns every model
// seen (equivalently, e.Models once this returns). It mirrors the
// teacher's yass_test.go solveAll helper, generalized into exported
// engine behavior per spec.md's model-forbidding supplement.
//
// Each iteration rebuilds the trail from scratch over the
// (ever-growing) formula; this is appropriate for test-only
// exhaustive enumeration of small instances, not for a hot path. It
// assumes the analyzer and decision heuristic hold no state that
// outlives a single Solve call other than what they can rebuild from
// the trail they are handed (true of FirstUIP and TrivialHeuristic;
// the MinCut family's implication-graph bookkeeping is not meant to
// survive a trail swap and should not be driven through SolveAll).
func (e *Engine) SolveAll() [][]bool {
	for {
		verdict := e.Solve()
		if verdict != Sat {
			return e.Models
		}
		e.Formula = append(e.Formula, ForbidModel(e.Models[len(e.Models)-1]))
		e.trail = NewTrail(e.trail.NumVariables(), len(e.Formula))
	}
}

// ForbidModel returns the clause that blocks model: its disjuncts are
// the negation of every literal model assigns, so no assignment equal
// to model can satisfy it. Appending this clause to a formula and
// re-solving is how every model of a small instance is enumerated,
// mirroring the teacher's yass_test.go solveAll helper.
func ForbidModel(model []bool) Clause {
	clause := make(Clause, len(model))
	for v, b := range model {
		if b {
			clause[v] = NegativeLiteral(Variable(v))
		} else {
			clause[v] = PositiveLiteral(Variable(v))
		}
	}
	return clause
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine{vars=%d clauses=%d conflicts=%d}", e.trail.NumVariables(), len(e.Formula), e.TotalConflicts)
}
