// Command yass reads a DIMACS CNF instance and reports SAT/UNSAT,
// optionally printing a satisfying assignment. The decision heuristic
// is fixed to TrivialHeuristic unless -vsids is given; the conflict
// analyzer is selected by -solver among the eight strategies named in
// original_source/src/main.rs's Solver enum.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/nikgaevoy/yass/parsers"
	"github.com/nikgaevoy/yass/sat"
	"github.com/nikgaevoy/yass/sat/analysis"
	"github.com/nikgaevoy/yass/sat/decision"
)

var (
	flagSolver        = flag.String("solver", "FirstUIPBasic", "conflict analyzer: "+strings.Join(solverNames, ", "))
	flagVSIDS         = flag.Bool("vsids", false, "use the VSIDS decision heuristic instead of the trivial one")
	flagVariableDecay = flag.Float64("variable-decay", sat.DefaultOptions.VariableDecay, "VSIDS score decay factor, in (0, 1]; ignored without -vsids")
	flagGzip          = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagMaxConflicts  = flag.Int64("max-conflicts", sat.DefaultOptions.MaxConflicts, "stop and report UNKNOWN after this many conflicts; negative means unbounded")
	flagTimeout       = flag.Duration("timeout", sat.DefaultOptions.Timeout, "stop and report UNKNOWN after this much wall time; negative means unbounded")
	flagCPUProfile    = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile    = flag.Bool("memprof", false, "save pprof memory profile in memprof")
)

var solverNames = []string{
	"FirstUIPBasic",
	"FirstUIP",
	"SecondUIP",
	"ThirdUIP",
	"AllUIP",
	"SaturatingAllUIP",
	"RelSat",
	"MinCut",
}

// newAnalyzer builds the sat.ConflictAnalyzer named by -solver, for n
// variables. The names and the FirstUIPBasic/FirstUIP split (plain
// resolution vs. the mincut machinery configured with
// FirstUIPFunction) follow original_source/src/main.rs's Solver enum
// and get_solver dispatch.
func newAnalyzer(name string, n int) (sat.ConflictAnalyzer, error) {
	switch name {
	case "FirstUIPBasic":
		return analysis.NewFirstUIP(n), nil
	case "FirstUIP":
		return analysis.NewMinCut(n, analysis.FirstUIPFunction{}), nil
	case "SecondUIP":
		return analysis.NewMinCut(n, analysis.SecondUIPFunction{}), nil
	case "ThirdUIP":
		return analysis.NewMinCut(n, analysis.ThirdUIPFunction{}), nil
	case "AllUIP":
		return analysis.NewBigMinCut(n, analysis.AllUIPFunction{}), nil
	case "SaturatingAllUIP":
		return analysis.NewMinCut(n, analysis.SaturatingAllUIPFunction{}), nil
	case "RelSat":
		return analysis.NewMinCut(n, analysis.RelSatFunction{}), nil
	case "MinCut":
		return analysis.NewMinCut(n, analysis.MinCutFunction{}), nil
	default:
		return nil, fmt.Errorf("unknown solver %q, want one of %s", name, strings.Join(solverNames, ", "))
	}
}

func newDecisionHeuristic(n int, opts sat.Options) sat.DecisionHeuristic {
	if *flagVSIDS {
		return decision.NewVSIDS(n, opts.VariableDecay, opts.PhaseSaving)
	}
	return decision.TrivialHeuristic{}
}

func run(instanceFile string) error {
	n, formula, err := parsers.LoadDIMACS(instanceFile, *flagGzip)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	analyzer, err := newAnalyzer(*flagSolver, n)
	if err != nil {
		return err
	}

	opts := sat.DefaultOptions
	opts.VariableDecay = *flagVariableDecay
	opts.MaxConflicts = *flagMaxConflicts
	opts.Timeout = *flagTimeout
	opts.PhaseSaving = *flagVSIDS

	engine := sat.NewEngine(n, formula, newDecisionHeuristic(n, opts), analyzer, opts)

	fmt.Printf("c variables:  %d\n", n)
	fmt.Printf("c clauses:    %d\n", len(formula))
	fmt.Printf("c solver:     %s\n", *flagSolver)

	start := time.Now()
	verdict := engine.Solve()
	elapsed := time.Since(start)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", engine.TotalConflicts, float64(engine.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", verdict)

	if verdict == sat.Sat {
		assignment := engine.Assignment()
		checkSatisfying(engine.Formula, assignment)

		bits := make([]string, len(assignment))
		for v, val := range assignment {
			if val {
				bits[v] = fmt.Sprintf("%d", v+1)
			} else {
				bits[v] = fmt.Sprintf("-%d", v+1)
			}
		}
		fmt.Println(strings.Join(bits, " "))
	}

	return nil
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		log.Fatal("missing instance file")
	}

	if *flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}

	if *flagMemProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
