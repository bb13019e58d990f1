package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// minCycleVertices is the smallest vertex count of a non-degenerate cycle.
const minCycleVertices = 3

// ErrGraphNil is returned when a nil *core.Graph is passed to CycleBasis.
var ErrGraphNil = errors.New("dfs: graph is nil")
