package sat_test

import (
	"testing"

	"github.com/nikgaevoy/yass/sat"
)

func TestLiteral_OppositeAndVariable(t *testing.T) {
	for v := sat.Variable(0); v < 5; v++ {
		pos := sat.PositiveLiteral(v)
		neg := sat.NegativeLiteral(v)

		if !pos.IsPositive() {
			t.Errorf("PositiveLiteral(%d).IsPositive() = false", v)
		}
		if neg.IsPositive() {
			t.Errorf("NegativeLiteral(%d).IsPositive() = true", v)
		}
		if pos.Variable() != v || neg.Variable() != v {
			t.Errorf("Variable() mismatch for v=%d: pos=%d neg=%d", v, pos.Variable(), neg.Variable())
		}
		if pos.Opposite() != neg || neg.Opposite() != pos {
			t.Errorf("Opposite() mismatch for v=%d", v)
		}
	}
}

func TestLiteral_FromDIMACS(t *testing.T) {
	cases := []struct {
		in   int
		want sat.Literal
	}{
		{1, sat.PositiveLiteral(0)},
		{-1, sat.NegativeLiteral(0)},
		{4, sat.PositiveLiteral(3)},
		{-4, sat.NegativeLiteral(3)},
	}
	for _, c := range cases {
		if got := sat.FromDIMACS(c.in); got != c.want {
			t.Errorf("FromDIMACS(%d) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestLiteral_XORRecoversOtherWatch exercises the identity the
// two-watched-literal rewatch loop depends on: given a watched pair
// (a, b) and a literal c equal to one of them, a^b^c recovers the
// other one, since XOR is its own inverse regardless of which operand
// matched.
func TestLiteral_XORRecoversOtherWatch(t *testing.T) {
	a := sat.FromDIMACS(3)
	b := sat.FromDIMACS(-7)

	if other := a ^ b ^ a; other != b {
		t.Errorf("a^b^a = %v, want b = %v", other, b)
	}
	if other := a ^ b ^ b; other != a {
		t.Errorf("a^b^b = %v, want a = %v", other, a)
	}
}
