//go:build yassdebug

package main

import "github.com/nikgaevoy/yass/sat"

// checkSatisfying is compiled in only under `go build -tags yassdebug`,
// mirroring original_source/src/main.rs's debug_assertions-gated
// assert!(cdcl::is_satisfying(...)): it costs an O(|formula|) scan
// that release builds should not pay on every run.
func checkSatisfying(formula sat.Formula, assignment []bool) {
	if !sat.IsSatisfying(formula, assignment) {
		panic("yass: solver reported SAT with a non-satisfying assignment")
	}
}
