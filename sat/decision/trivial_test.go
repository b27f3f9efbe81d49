package decision_test

import (
	"testing"

	"github.com/nikgaevoy/yass/sat"
	"github.com/nikgaevoy/yass/sat/decision"
)

func TestTrivialHeuristic_Decide(t *testing.T) {
	trail := sat.NewTrail(3, 0)
	h := decision.TrivialHeuristic{}

	lit, ok := h.Decide(nil, trail)
	if !ok || lit != sat.PositiveLiteral(0) {
		t.Fatalf("Decide() = (%v, %v), want (0, true)", lit, ok)
	}

	trail.Decide(sat.PositiveLiteral(0))
	lit, ok = h.Decide(nil, trail)
	if !ok || lit != sat.PositiveLiteral(1) {
		t.Fatalf("Decide() after assigning 0 = (%v, %v), want (1, true)", lit, ok)
	}

	trail.Decide(sat.PositiveLiteral(1))
	trail.Decide(sat.PositiveLiteral(2))
	if _, ok := h.Decide(nil, trail); ok {
		t.Fatalf("Decide() with every variable assigned: want ok = false")
	}
}
