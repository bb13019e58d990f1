package dfs_test

import (
	"testing"

	"github.com/katalvlaran/birips/core"
	"github.com/katalvlaran/birips/dfs"
)

// BenchmarkCycleBasis_Grid100 measures extraction on a 100×100 grid graph
// (10,000 vertices, 9,801 independent squares).
func BenchmarkCycleBasis_Grid100(b *testing.B) {
	const side = 100
	g := core.NewGraph(core.WithVertexCapacity(side * side))
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				_, _ = g.AddEdge(v, v+1, 1)
			}
			if r+1 < side {
				_, _ = g.AddEdge(v, v+side, 1)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.CycleBasis(g); err != nil {
			b.Fatal(err)
		}
	}
}
