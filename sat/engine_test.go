package sat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikgaevoy/yass/sat"
	"github.com/nikgaevoy/yass/sat/analysis"
	"github.com/nikgaevoy/yass/sat/decision"
)

// toString packs a model into a string keyed on boolean value, the way
// the teacher's yass_test.go toString/toSet pair does, so two model
// sets can be compared unordered.
func toString(model []bool) string {
	s := make([]byte, len(model))
	for i, b := range model {
		if b {
			s[i] = 1
		}
	}
	return string(s)
}

func toSet(models [][]bool) map[string]struct{} {
	set := make(map[string]struct{}, len(models))
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

func lit(x int) sat.Literal { return sat.FromDIMACS(x) }

// pigeonhole returns the standard pigeonhole-principle UNSAT instance:
// holes+1 pigeons, holes holes, each pigeon in at least one hole, no
// hole holding two pigeons. It is unsatisfiable for any holes >= 1 and
// exercises nontrivial backjumping.
func pigeonhole(holes int) (int, sat.Formula) {
	pigeons := holes + 1
	v := func(p, h int) int { return p*holes + h + 1 } // 1-indexed DIMACS var

	var formula sat.Formula
	for p := 0; p < pigeons; p++ {
		var atLeastOne sat.Clause
		for h := 0; h < holes; h++ {
			atLeastOne = append(atLeastOne, lit(v(p, h)))
		}
		formula = append(formula, atLeastOne)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				formula = append(formula, sat.Clause{lit(-v(p1, h)), lit(-v(p2, h))})
			}
		}
	}
	return pigeons * holes, formula
}

func allAnalyzers(n int) map[string]sat.ConflictAnalyzer {
	return map[string]sat.ConflictAnalyzer{
		"FirstUIP":          analysis.NewFirstUIP(n),
		"MinCut":            analysis.NewMinCut(n, analysis.MinCutFunction{}),
		"FirstUIPFunction":  analysis.NewMinCut(n, analysis.FirstUIPFunction{}),
		"SecondUIPFunction": analysis.NewMinCut(n, analysis.SecondUIPFunction{}),
		"ThirdUIPFunction":  analysis.NewMinCut(n, analysis.ThirdUIPFunction{}),
		"SaturatingAllUIP":  analysis.NewMinCut(n, analysis.SaturatingAllUIPFunction{}),
		"RelSat":            analysis.NewMinCut(n, analysis.RelSatFunction{}),
		"AllUIP":            analysis.NewBigMinCut(n, analysis.AllUIPFunction{}),
	}
}

func TestEngine_Solve_Satisfiable(t *testing.T) {
	formula := sat.Formula{
		{lit(1), lit(2)},
		{lit(-1), lit(3)},
		{lit(-2), lit(-3)},
		{lit(1), lit(-2), lit(3)},
	}

	for name, analyzer := range allAnalyzers(3) {
		t.Run(name, func(t *testing.T) {
			engine := sat.NewEngine(3, append(sat.Formula(nil), formula...), decision.TrivialHeuristic{}, analyzer, sat.DefaultOptions)
			verdict := engine.Solve()
			if verdict != sat.Sat {
				t.Fatalf("Solve() = %v, want Sat", verdict)
			}
			if !sat.IsSatisfying(formula, engine.Assignment()) {
				t.Errorf("Assignment() = %v does not satisfy the formula", engine.Assignment())
			}
		})
	}
}

func TestEngine_Solve_Unsatisfiable(t *testing.T) {
	n, formula := pigeonhole(3)

	for name, analyzer := range allAnalyzers(n) {
		t.Run(name, func(t *testing.T) {
			engine := sat.NewEngine(n, append(sat.Formula(nil), formula...), decision.TrivialHeuristic{}, analyzer, sat.DefaultOptions)
			if verdict := engine.Solve(); verdict != sat.Unsat {
				t.Fatalf("Solve() = %v, want Unsat", verdict)
			}
		})
	}
}

func TestEngine_Solve_VSIDS(t *testing.T) {
	n, formula := pigeonhole(3)
	engine := sat.NewEngine(n, append(sat.Formula(nil), formula...), decision.NewVSIDS(n, 0.95, true), analysis.NewFirstUIP(n), sat.DefaultOptions)
	if verdict := engine.Solve(); verdict != sat.Unsat {
		t.Fatalf("Solve() = %v, want Unsat", verdict)
	}
}

func TestEngine_Solve_EmptyClauseAtLevelZero(t *testing.T) {
	formula := sat.Formula{
		{lit(1)},
		{lit(-1)},
	}
	engine := sat.NewEngine(1, formula, decision.TrivialHeuristic{}, analysis.NewFirstUIP(1), sat.DefaultOptions)
	if verdict := engine.Solve(); verdict != sat.Unsat {
		t.Fatalf("Solve() = %v, want Unsat", verdict)
	}
}

// TestEngine_SolveAll_FindsEveryModel enumerates every model of a
// small instance via SolveAll/Models/ForbidModel and checks the result
// against every model found by brute-force truth-table enumeration
// (P1: model-checking over every model of a small instance, not just
// the first one Solve happens to find).
func TestEngine_SolveAll_FindsEveryModel(t *testing.T) {
	n := 3
	formula := sat.Formula{
		{lit(1), lit(2)},
		{lit(-1), lit(3)},
		{lit(-2), lit(-3)},
		{lit(1), lit(-2), lit(3)},
	}

	var want [][]bool
	for mask := 0; mask < 1<<n; mask++ {
		model := make([]bool, n)
		for v := 0; v < n; v++ {
			model[v] = mask&(1<<v) != 0
		}
		if sat.IsSatisfying(formula, model) {
			want = append(want, model)
		}
	}

	engine := sat.NewEngine(n, append(sat.Formula(nil), formula...), decision.TrivialHeuristic{}, analysis.NewFirstUIP(n), sat.DefaultOptions)
	got := engine.SolveAll()

	if len(got) != len(want) {
		t.Fatalf("SolveAll() found %d models, want %d", len(got), len(want))
	}
	if diff := cmp.Diff(toSet(want), toSet(got)); diff != "" {
		t.Errorf("SolveAll() model set mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(toSet(got), toSet(engine.Models)); diff != "" {
		t.Errorf("Models field disagrees with SolveAll() return value (-got +engine.Models):\n%s", diff)
	}
}

func TestEngine_Solve_MaxConflictsStopsEarly(t *testing.T) {
	n, formula := pigeonhole(4)
	opts := sat.DefaultOptions
	opts.MaxConflicts = 0

	engine := sat.NewEngine(n, formula, decision.TrivialHeuristic{}, analysis.NewFirstUIP(n), opts)
	if verdict := engine.Solve(); verdict != sat.Unknown {
		t.Fatalf("Solve() with MaxConflicts=0 = %v, want Unknown", verdict)
	}
}
