// Package sat implements the core data model of a CDCL SAT solver:
// literals, clauses, variable/clause state, and the trail that ties
// them together. The propagation and conflict-analysis machinery that
// operates on this data model lives in this package (engine.go) and in
// the sibling sat/analysis, sat/flow and sat/decision packages.
package sat

import "fmt"

// Variable is a non-negative variable identifier in [0, n).
type Variable int

// Literal is a signed encoding of (variable, polarity) using one's
// complement: for variable v, the positive literal is v and the
// negative literal is ^v. This encoding is load-bearing: negation is a
// single bit flip, and a^b^c recovers "the other watched literal"
// given a falsified literal c and a known pair (a, b).
//
// A two's-complement sign flip would break this identity for v == 0;
// one's complement does not need to special-case variable 0.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v Variable) Literal {
	return Literal(v)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v Variable) Literal {
	return ^Literal(v)
}

// VariableOf returns the variable the literal refers to.
func VariableOf(l Literal) Variable {
	if l >= 0 {
		return Variable(l)
	}
	return Variable(^l)
}

// IsPositive reports whether l is the positive literal of its variable.
func IsPositive(l Literal) bool {
	return l >= 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return ^l
}

// Variable returns the variable this literal refers to.
func (l Literal) Variable() Variable {
	return VariableOf(l)
}

// IsPositive reports whether l is the positive literal of its variable.
func (l Literal) IsPositive() bool {
	return IsPositive(l)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", int(l.Variable()))
	}
	return fmt.Sprintf("!%d", int(l.Variable()))
}

// FromDIMACS converts a 1-indexed signed DIMACS literal into the
// internal one's-complement encoding: x>0 becomes x-1, x<0 becomes the
// negative literal of (-x-1).
func FromDIMACS(x int) Literal {
	if x > 0 {
		return PositiveLiteral(Variable(x - 1))
	}
	return NegativeLiteral(Variable(-x - 1))
}
