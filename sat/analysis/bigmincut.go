package analysis

import (
	"math/big"

	"github.com/nikgaevoy/yass/sat"
	"github.com/nikgaevoy/yass/sat/flow"
)

type bigMincutEdge struct {
	to     int
	weight *big.Int
}

// BigMinCut is MinCut's arbitrary-precision counterpart, used for the
// AllUIP heuristic whose vertex weights grow as 2^level and would
// overflow a machine word on deep trails. The graph bookkeeping is
// identical to MinCut; only the edge weight type and the flow solver
// it drives differ.
type BigMinCut struct {
	heuristic BigWeightHeuristic

	graph   [][]bigMincutEdge
	parents [][]int
	labels  []sat.Literal
	indices []int
}

// NewBigMinCut returns a BigMinCut analyzer for n variables using the
// given arbitrary-precision weight heuristic.
func NewBigMinCut(n int, heuristic BigWeightHeuristic) *BigMinCut {
	return &BigMinCut{
		heuristic: heuristic,
		graph:     make([][]bigMincutEdge, 2),
		parents:   make([][]int, 2),
		labels:    make([]sat.Literal, 2),
		indices:   make([]int, n),
	}
}

func (m *BigMinCut) addEdge(from, to int) {
	m.graph[from] = append(m.graph[from], bigMincutEdge{to: to, weight: new(big.Int)})
	m.parents[to] = append(m.parents[to], from)
}

func (m *BigMinCut) addLiteral(literal sat.Literal, reason sat.Clause, hasReason bool) {
	inID := len(m.graph)
	outID := inID + 1

	m.graph = append(m.graph, []bigMincutEdge{{to: outID, weight: new(big.Int)}})
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

func (m *BigMinCut) popRedundantEdges(v int, trail *sat.Trail) {
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

func (m *BigMinCut) popRedundantVertex(trail *sat.Trail) {
	n := len(m.parents) - 1
	parentsOfLast := m.parents[n]
	m.parents = m.parents[:n]
	for _, v := range parentsOfLast {
		m.popRedundantEdges(v, trail)
	}
	m.graph = m.graph[:len(m.graph)-1]
}

// AnalyzeConflict implements sat.ConflictAnalyzer.
func (m *BigMinCut) AnalyzeConflict(formula sat.Formula, trail *sat.Trail, conflict sat.Clause) sat.Clause {
	conflictLevel := trail.TopLevel()

	for _, l := range conflict {
		m.addEdge(m.indices[l.Variable()]+1, sinkVertex)
	}

	sourceExcess := m.heuristic.SourceExcess(conflictLevel)

	for v := 2; v < len(m.graph); v += 2 {
		variable := m.labels[v].Variable()
		level := trail.Assignment[variable].DecisionLevel()
		isDecision := trail.Levels[level][0].Var == variable
		m.graph[v][0].weight = m.heuristic.GenVertexWeight(level, conflictLevel, isDecision)
	}

	for i := range m.graph[sourceVertex] {
		m.graph[sourceVertex][i].weight = sourceExcess
	}
	for v := 3; v < len(m.graph); v += 2 {
		for i := range m.graph[v] {
			m.graph[v][i].weight = sourceExcess
		}
	}

	g := flow.NewBig(len(m.graph))
	for v, outs := range m.graph {
		for _, e := range outs {
			g.AddEdge(v, e.to, new(big.Int).Set(e.weight))
		}
	}
	g.SetExcess(sourceVertex, new(big.Int).Set(sourceExcess))

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

// BacktrackAndAddClause implements sat.ConflictAnalyzer.
func (m *BigMinCut) BacktrackAndAddClause(formula sat.Formula, trail *sat.Trail, backLevel int, clauseID sat.ClauseID) {
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
func (m *BigMinCut) PropagateLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal, reasonID sat.ClauseID) {
	m.addLiteral(literal, formula[reasonID], true)
}

// DecideLiteral implements sat.ConflictAnalyzer.
func (m *BigMinCut) DecideLiteral(formula sat.Formula, trail *sat.Trail, literal sat.Literal) {
	m.addLiteral(literal, nil, false)
}
