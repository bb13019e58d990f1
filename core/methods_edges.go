// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/EdgeBetween/Edges/EdgeCount.
// Determinism:
//   - Edge IDs are insertion indices; Edges() returns them in ID order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
// AI-HINT (file):
//   - Endpoints are normalized so that Edge.From < Edge.To.
//   - Missing endpoints are created on demand by AddEdge.

package core

import "math"

// AddEdge creates the undirected edge {from,to} with the given weight and
// returns its ID.
//
// Steps:
//  1. Validate IDs, loop and weight.
//  2. Normalize endpoint order (From < To).
//  3. Lock, ensure both vertices, reject a parallel edge.
//  4. Append to the edge catalog and link both adjacency buckets.
//
// Errors:
//   - ErrInvalidVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	if from < 0 || to < 0 {
		return 0, ErrInvalidVertexID
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return 0, ErrBadWeight
	}
	if from > to {
		from, to = to, from
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, dup := g.adjacency[from][to]; dup {
		return 0, ErrMultiEdgeNotAllowed
	}

	e := &Edge{ID: len(g.edges), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e

	return e.ID, nil
}

// HasEdge reports whether the edge {from,to} exists (in either spelling).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeBetween returns the edge {from,to}.
//
// Errors:
//   - ErrEdgeNotFound: if the endpoints are not adjacent.
func (g *Graph) EdgeBetween(from, to int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// GetEdge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
func (g *Graph) GetEdge(edgeID int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if edgeID < 0 || edgeID >= len(g.edges) {
		return nil, ErrEdgeNotFound
	}

	return g.edges[edgeID], nil
}

// Edges returns all edges in ID (insertion) order. The slice is a copy; the
// *Edge values are shared and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Edge(nil), g.edges...)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
