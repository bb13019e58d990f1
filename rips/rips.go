// SPDX-License-Identifier: MIT

package rips

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/birips/core"
	"github.com/katalvlaran/birips/pointcloud"
)

// DefaultTolerance is the grouping slack applied to filtration values.
const DefaultTolerance = 1e-9

// Edge is a 1-simplex {I,J} (I < J, indices into the cloud) and the
// filtration value at which it appears.
type Edge struct {
	I, J  int
	Value float64
}

// Layer is a run of skeleton edges sharing one filtration value (up to the
// grouping tolerance).
type Layer struct {
	// Value is the filtration value of the first edge of the run.
	Value float64
	// Upper is the largest filtration value in the run; the whole layer is
	// present in Rips(r) iff Upper ≤ r + tol.
	Upper float64
	// Edges in (value, i, j) order.
	Edges []Edge
}

// Skeleton returns the Rips 1-skeleton of c at radius r.
//
// Implementation:
//   - Stage 1: empty cloud → nil; otherwise validate c and tol.
//   - Stage 2: enumerate i<j with d(i,j) ≤ r + tol.
//   - Stage 3: sort by (value, i, j).
//
// Errors:
//   - pointcloud validation sentinels; pointcloud.ErrInvalidParameter for a
//     negative or non-finite tol, or a NaN radius.
func Skeleton(c pointcloud.Cloud, r, tol float64) ([]Edge, error) {
	if len(c) == 0 {
		return nil, nil
	}
	if err := pointcloud.Validate(c); err != nil {
		return nil, err
	}
	if err := validateTolerance(tol); err != nil {
		return nil, err
	}
	if math.IsNaN(r) {
		return nil, fmt.Errorf("rips: Skeleton: radius is NaN: %w", pointcloud.ErrInvalidParameter)
	}

	limit := r + tol
	var edges []Edge
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if d := pointcloud.Distance(c[i], c[j]); d <= limit {
				edges = append(edges, Edge{I: i, J: j, Value: d})
			}
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		ea, eb := edges[a], edges[b]
		if ea.Value != eb.Value {
			return ea.Value < eb.Value
		}
		if ea.I != eb.I {
			return ea.I < eb.I
		}

		return ea.J < eb.J
	})

	return edges, nil
}

// Layers groups a sorted skeleton into filtration layers, ascending.
// An edge joins the current layer iff its value is within tol of the
// layer's first value.
func Layers(edges []Edge, tol float64) []Layer {
	var out []Layer
	for start := 0; start < len(edges); {
		anchor := edges[start].Value
		end := start + 1
		for end < len(edges) && edges[end].Value-anchor <= tol {
			end++
		}
		out = append(out, Layer{
			Value: anchor,
			Upper: edges[end-1].Value,
			Edges: edges[start:end:end],
		})
		start = end
	}

	return out
}

// Graph returns the layer's edges as an undirected core.Graph whose vertices
// are point indices.
func (l Layer) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithVertexCapacity(2 * len(l.Edges)))
	for _, e := range l.Edges {
		if _, err := g.AddEdge(e.I, e.J, e.Value); err != nil {
			return nil, fmt.Errorf("rips: Layer.Graph: AddEdge(%d,%d): %w", e.I, e.J, err)
		}
	}

	return g, nil
}

// Graph returns edges as an undirected core.Graph on the vertices 0..n-1.
// Points without an edge stay as isolated vertices.
func Graph(n int, edges []Edge) (*core.Graph, error) {
	g := core.NewGraph(core.WithVertexCapacity(n))
	for v := 0; v < n; v++ {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("rips: Graph: AddVertex(%d): %w", v, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.I, e.J, e.Value); err != nil {
			return nil, fmt.Errorf("rips: Graph: AddEdge(%d,%d): %w", e.I, e.J, err)
		}
	}

	return g, nil
}

// Prefix returns the layer restricted to edges with value ≤ limit.
func (l Layer) Prefix(limit float64) Layer {
	n := sort.Search(len(l.Edges), func(i int) bool { return l.Edges[i].Value > limit })
	if n == 0 {
		return Layer{}
	}

	return Layer{Value: l.Value, Upper: l.Edges[n-1].Value, Edges: l.Edges[:n:n]}
}

// Len returns the number of edges in the layer.
func (l Layer) Len() int { return len(l.Edges) }

func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("rips: tolerance %v: %w", tol, pointcloud.ErrInvalidParameter)
	}

	return nil
}
