package decision_test

import (
	"testing"

	"github.com/nikgaevoy/yass/sat"
	"github.com/nikgaevoy/yass/sat/decision"
)

func TestVSIDS_BumpChangesDecisionOrder(t *testing.T) {
	trail := sat.NewTrail(3, 1)
	v := decision.NewVSIDS(3, 0.95, false)

	first, ok := v.Decide(nil, trail)
	if !ok {
		t.Fatalf("Decide() ok = false on an empty trail")
	}

	// Reinsert, then repeatedly bump variable 2 via a learned clause so
	// it outranks every other variable.
	trail2 := sat.NewTrail(3, 1)
	formula := sat.Formula{{sat.PositiveLiteral(2)}}
	for i := 0; i < 5; i++ {
		v.BacktrackAndAddClause(formula, trail2, 0, 0)
	}

	next, ok := v.Decide(nil, trail2)
	if !ok {
		t.Fatalf("Decide() ok = false after bumping")
	}
	if next.Variable() != 2 {
		t.Errorf("Decide() after bumping variable 2 repeatedly = %v, want variable 2", next)
	}
	_ = first
}

func TestVSIDS_PhaseSaving(t *testing.T) {
	trail := sat.NewTrail(1, 0)
	v := decision.NewVSIDS(1, 0.95, true)

	v.DecideLiteral(nil, trail, sat.NegativeLiteral(0))

	trail2 := sat.NewTrail(1, 0)
	lit, ok := v.Decide(nil, trail2)
	if !ok {
		t.Fatalf("Decide() ok = false")
	}
	if lit != sat.NegativeLiteral(0) {
		t.Errorf("Decide() with phase saving = %v, want the previously-assigned negative phase", lit)
	}
}
