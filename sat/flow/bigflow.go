package flow

import "math/big"

// BigEdge is one directed arc with arbitrary-precision remaining
// capacity, mirroring Edge for the AllUIP weight heuristic whose
// capacities grow as 2^level and would overflow a machine word.
type BigEdge struct {
	To       int
	Capacity *big.Int
}

// BigGraph is the *big.Int analog of Graph: same preflow-push
// algorithm, same paired forward/reverse edge layout, arbitrary
// precision arithmetic throughout.
type BigGraph struct {
	adjacency [][]int
	edges     []BigEdge
	excess    []*big.Int
}

// NewBig returns an empty graph with n vertices, each with zero excess.
func NewBig(n int) *BigGraph {
	g := &BigGraph{adjacency: make([][]int, n), excess: make([]*big.Int, n)}
	for i := range g.excess {
		g.excess[i] = new(big.Int)
	}
	return g
}

// AddVertex appends a new vertex with the given initial excess and
// returns its id.
func (g *BigGraph) AddVertex(excess *big.Int) int {
	id := len(g.adjacency)
	g.adjacency = append(g.adjacency, nil)
	g.excess = append(g.excess, excess)
	return id
}

// SetExcess overwrites the excess of an existing vertex.
func (g *BigGraph) SetExcess(v int, excess *big.Int) {
	g.excess[v] = excess
}

// AddEdge adds a forward edge of the given capacity and a reverse edge
// of capacity 0.
func (g *BigGraph) AddEdge(from, to int, capacity *big.Int) int {
	return g.AddDoubleEdge(from, to, capacity, new(big.Int))
}

// AddDoubleEdge adds a forward edge and a reverse edge with
// independent capacities, returning the forward edge's id.
func (g *BigGraph) AddDoubleEdge(from, to int, capacity, reverseCapacity *big.Int) int {
	id := len(g.edges)
	g.adjacency[from] = append(g.adjacency[from], id)
	g.edges = append(g.edges, BigEdge{To: to, Capacity: capacity})
	g.adjacency[to] = append(g.adjacency[to], id+1)
	g.edges = append(g.edges, BigEdge{To: from, Capacity: reverseCapacity})
	return id
}

// SetCapacity overwrites the capacity of an existing edge.
func (g *BigGraph) SetCapacity(edgeID int, capacity *big.Int) {
	g.edges[edgeID].Capacity = capacity
}

func bigPushEdge(edges []BigEdge, excess []*big.Int, id int) *big.Int {
	v := edges[id^1].To
	u := edges[id].To

	value := new(big.Int).Set(excess[v])
	if edges[id].Capacity.Cmp(value) < 0 {
		value.Set(edges[id].Capacity)
	}

	edges[id].Capacity.Sub(edges[id].Capacity, value)
	edges[id^1].Capacity.Add(edges[id^1].Capacity, value)
	excess[v].Sub(excess[v], value)
	excess[u].Add(excess[u], value)

	return value
}

// Flow runs preflow-push to local convergence and returns the flow
// value delivered to sink, resetting sink's excess to 0.
func (g *BigGraph) Flow(sink int) *big.Int {
	const unset = ^uint32(0)
	zero := new(big.Int)

	for {
		order := []int{sink}
		layers := make([]uint32, len(g.excess))
		for i := range layers {
			layers[i] = unset
		}
		layers[sink] = 1

		for i := 0; i < len(order); i++ {
			v := order[i]
			for _, edgeID := range g.adjacency[v] {
				if g.edges[edgeID^1].Capacity.Sign() == 0 {
					continue
				}
				u := g.edges[edgeID].To
				if layers[u] == unset {
					layers[u] = layers[v] + 1
					order = append(order, u)
				}
			}
		}

		changed := false
		for i := len(order) - 1; i >= 0; i-- {
			v := order[i]
			for _, edgeID := range g.adjacency[v] {
				if g.excess[v].Sign() == 0 {
					break
				}
				if layers[g.edges[edgeID].To] == layers[v]-1 {
					if bigPushEdge(g.edges, g.excess, edgeID).Sign() != 0 {
						changed = true
					}
				}
			}
		}

		if !changed {
			break
		}
	}

	delivered := g.excess[sink]
	g.excess[sink] = zero
	return delivered
}

// Cut returns, per vertex, whether it lies on the sink side (true) or
// source side (false) of the minimum cut found by the preceding Flow
// call. See Graph.Cut for the construction.
func (g *BigGraph) Cut(source int) []bool {
	reachable := make([]bool, len(g.adjacency))
	reachable[source] = true
	stack := []int{source}
	for v, ex := range g.excess {
		if ex.Sign() > 0 && !reachable[v] {
			reachable[v] = true
			stack = append(stack, v)
		}
	}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, edgeID := range g.adjacency[v] {
			if g.edges[edgeID].Capacity.Sign() == 0 {
				continue
			}
			u := g.edges[edgeID].To
			if !reachable[u] {
				reachable[u] = true
				stack = append(stack, u)
			}
		}
	}

	cut := make([]bool, len(reachable))
	for v, r := range reachable {
		cut[v] = !r
	}
	return cut
}
