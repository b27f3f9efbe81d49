//go:build !yassdebug

package main

import "github.com/nikgaevoy/yass/sat"

// checkSatisfying is a no-op outside debug builds; see check_debug.go.
func checkSatisfying(formula sat.Formula, assignment []bool) {}
