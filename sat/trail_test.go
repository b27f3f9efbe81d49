package sat_test

import (
	"testing"

	"github.com/nikgaevoy/yass/sat"
)

func TestTrail_DecideAndPropagate(t *testing.T) {
	trail := sat.NewTrail(3, 2)

	trail.Decide(lit(1))
	if trail.TopLevel() != 1 {
		t.Fatalf("TopLevel() after one decision = %d, want 1", trail.TopLevel())
	}
	trail.Propagate(lit(2), 0)
	trail.Propagate(lit(-3), 1)

	if !trail.Assignment[0].IsTrue() {
		t.Errorf("variable 0: want true")
	}
	if !trail.Assignment[1].IsTrue() {
		t.Errorf("variable 1: want true")
	}
	if !trail.Assignment[2].IsFalse() {
		t.Errorf("variable 2: want false")
	}
	if len(trail.Levels[1]) != 3 {
		t.Fatalf("len(Levels[1]) = %d, want 3 (1 decision + 2 propagations)", len(trail.Levels[1]))
	}
}

func TestTrail_BackjumpResetsAssignment(t *testing.T) {
	trail := sat.NewTrail(3, 0)

	trail.Decide(lit(1))
	trail.Decide(lit(2))
	trail.Propagate(lit(3), 0)

	popped := trail.Backjump(1)
	if len(popped) != 2 {
		t.Fatalf("Backjump(1) popped %d entries, want 2", len(popped))
	}
	if trail.TopLevel() != 1 {
		t.Fatalf("TopLevel() after Backjump(1) = %d, want 1", trail.TopLevel())
	}
	if !trail.Assignment[0].IsTrue() {
		t.Errorf("variable 0 (level 1, kept): want still true")
	}
	if !trail.Assignment[1].IsUnset() {
		t.Errorf("variable 1 (level 2, popped): want unset")
	}
	if !trail.Assignment[2].IsUnset() {
		t.Errorf("variable 2 (level 2, popped): want unset")
	}
}
