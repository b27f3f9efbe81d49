package analysis

import (
	"github.com/nikgaevoy/yass/sat"
	"github.com/nikgaevoy/yass/sat/flow"
)

const (
	sourceVertex = 0
	sinkVertex   = 1
)

type mincutEdge struct {
	to     int
	weight uint64
}

// MinCut is the minimum-cut-based conflict analyzer: it maintains an
// implication graph in lock-step with the trail (a split in/out vertex
// pair per assigned literal) and, on every conflict, assigns vertex
// weights via the supplied WeightHeuristic and runs a maxflow/mincut
// to derive the learned clause from the cut edges. Different
// WeightHeuristic instances turn the same machinery into First-UIP,
// k-UIP, All-UIP, Rel_Sat or minimal-cut learning.
type MinCut struct {
	heuristic WeightHeuristic

	graph   [][]mincutEdge
	parents [][]int
	labels  []sat.Literal
	indices []int
}

// NewMinCut returns a MinCut analyzer for n variables using the given
// weight heuristic.
func NewMinCut(n int, heuristic WeightHeuristic) *MinCut {
	return &MinCut{
		heuristic: heuristic,
		graph:     make([][]mincutEdge, 2),
		parents:   make([][]int, 2),
		labels:    make([]sat.Literal, 2),
		indices:   make([]int, n),
	}
}

func (m *MinCut) addEdge(from, to int) {
	m.graph[from] = append(m.graph[from], mincutEdge{to: to})
	m.parents[to] = append(m.parents[to], from)
}

// addLiteral appends the split (in, out) vertex pair for literal, and
// wires it to its antecedents: an edge from SOURCE if it was a
// decision, or an edge from out(variable) for every other literal of
// its antecedent clause if it was propagated.
func (m *MinCut) addLiteral(literal sat.Literal, reason sat.Clause, hasReason bool) {
	inID := len(m.graph)
	outID := inID + 1

	m.graph = append(m.graph, []mincutEdge{{to: outID}})
	m.parents = append(m.parents, nil)
	m.labels = append(m.labels, literal)

	m.graph = append(m.graph, nil)
	m.parents = append(m.parents, []int{inID})
	m.labels = append(m.labels, literal)

	m.indices[literal.Variable()] = inID

	if !hasReason {
		m.addEdge(sourceVertex, inID)
		return
	}
	for _, l := range reason {
		if l == literal {
			continue
		}
		m.addEdge(m.indices[l.Variable()]+1, inID)
	}
}

func (m *MinCut) popRedundantEdges(v int, trail *sat.Trail) {
	if v >= len(m.graph) {
		return
	}
	for len(m.graph[v]) > 0 {
		last := m.graph[v][len(m.graph[v])-1]
		if trail.Assignment[m.labels[last.to].Variable()].IsUnset() {
			m.graph[v] = m.graph[v][:len(m.graph[v])-1]
		} else {
			break
		}
	}
}

func (m *MinCut) popRedundantVertex(trail *sat.Trail) {
	n := len(m.parents) - 1
	parentsOfLast := m.parents[n]
	m.parents = m.parents[:n]
	for _, v := range parentsOfLast {
		m.popRedundantEdges(v, trail)
	}
	m.graph = m.graph[:len(m.graph)-1]
}

// AnalyzeConflict implements sat.ConflictAnalyzer.
func (m *MinCut) AnalyzeConflict(formula sat.Formula, trail *sat.Trail, conflict sat.Clause) sat.Clause {
	conflictLevel := trail.TopLevel()

	for _, l := range conflict {
		m.addEdge(m.indices[l.Variable()]+1, sinkVertex)
	}

	excess := make([]uint64, len(m.graph))
	excess[sourceVertex] = m.heuristic.SourceExcess(conflictLevel)

	for v := 2; v < len(m.graph); v += 2 {
		variable := m.labels[v].Variable()
		level := trail.Assignment[variable].DecisionLevel()
		isDecision := trail.Levels[level][0].Var == variable
		m.graph[v][0].weight = m.heuristic.GenVertexWeight(level, conflictLevel, isDecision)
	}

	for i := range m.graph[sourceVertex] {
		m.graph[sourceVertex][i].weight = excess[sourceVertex]
	}
	for v := 3; v < len(m.graph); v += 2 {
		for i := range m.graph[v] {
			m.graph[v][i].weight = excess[sourceVertex]
		}
	}

	g := flow.New(len(m.graph))
	for v, outs := range m.graph {
		for _, e := range outs {
			g.AddEdge(v, e.to, e.weight)
		}
	}
	for v, ex := range excess {
		g.SetExcess(v, ex)
	}

	g.Flow(sinkVertex)
	cut := g.Cut(sourceVertex)

	var clause sat.Clause
	for v := 2; v < len(cut); v += 2 {
		if cut[v] != cut[v+1] {
			clause = append(clause, m.labels[v].Opposite())
		}
	}

	return clause
}

// BacktrackAndAddClause implements sat.ConflictAnalyzer: it removes
// the sink edges added for this conflict and pops vertex pairs whose
// variable was released by the backjump.
func (m *MinCut) BacktrackAndAddClause(formula sat.Formula, trail *sat.Trail, backLevel int, clauseID sat.ClauseID) {
	sinkParents := m.parents[sinkVertex]
	m.parents[sinkVertex] = nil
	for _, v := range sinkParents {
		m.graph[v] = m.graph[v][:len(m.graph[v])-1]
	}

	for len(m.graph) > 2 && trail.Assignment[m.labels[len(m.graph)-1].Variable()].IsUnset() {
		m.popRedundantVertex(trail)
	}
	m.labels = m.labels[:len(m.graph)]
	m.parents = m.parents[:len(m.graph)]
}

// PropagateLiteral implements sat.ConflictAnalyzer.
func (m *MinCut) PropagateLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal, reasonID sat.ClauseID) {
	m.addLiteral(literal, formula[reasonID], true)
}

// DecideLiteral implements sat.ConflictAnalyzer.
func (m *MinCut) DecideLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal) {
	m.addLiteral(literal, nil, false)
}
