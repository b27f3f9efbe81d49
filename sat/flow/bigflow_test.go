package flow

import (
	"math/big"
	"testing"
)

func big64(v int64) *big.Int { return big.NewInt(v) }

func TestBigGraph_Flow_Diamond(t *testing.T) {
	g := NewBig(4)
	const source, sink, a, b = 0, 1, 2, 3

	huge := new(big.Int).Lsh(big.NewInt(1), 200)

	g.SetExcess(source, new(big.Int).Set(huge))
	g.AddEdge(source, a, new(big.Int).Set(huge))
	g.AddEdge(source, b, new(big.Int).Set(huge))
	g.AddEdge(a, sink, big64(3))
	g.AddEdge(b, sink, big64(5))

	got := g.Flow(sink)
	if got.Cmp(big64(8)) != 0 {
		t.Errorf("Flow() = %s, want 8", got)
	}

	cut := g.Cut(source)
	if cut[source] {
		t.Errorf("Cut()[source] = true, want false")
	}
	if !cut[sink] {
		t.Errorf("Cut()[sink] = false, want true")
	}
}

func TestBigGraph_Flow_ExceedsMachineWord(t *testing.T) {
	g := NewBig(3)
	const source, sink, v = 0, 1, 2

	// A capacity well beyond uint64's range, as AllUIP's 2^level
	// weights require for deep trails.
	bottleneck := new(big.Int).Lsh(big.NewInt(1), 100)
	huge := new(big.Int).Lsh(big.NewInt(1), 200)

	g.SetExcess(source, new(big.Int).Set(huge))
	g.AddEdge(source, v, new(big.Int).Set(huge))
	g.AddEdge(v, sink, new(big.Int).Set(bottleneck))

	got := g.Flow(sink)
	if got.Cmp(bottleneck) != 0 {
		t.Errorf("Flow() = %s, want %s", got, bottleneck)
	}
}
