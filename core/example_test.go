package core_test

import (
	"fmt"

	"github.com/katalvlaran/birips/core"
)

// ExampleGraph builds a weighted square and walks the neighbours of vertex 0.
//
//	0───1
//	│   │
//	3───2
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 0, 1)

	nbrs, _ := g.NeighborIDs(0)
	fmt.Println(g.VertexCount(), g.EdgeCount(), nbrs)
	// Output:
	// 4 4 [1 3]
}
