// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Both APIs order results by the neighbouring vertex ID ascending.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "sort"

// Neighbors returns all edges incident to id, ordered by the opposite
// endpoint ascending.
//
// Errors:
//   - ErrVertexNotFound: if id does not exist.
//
// Complexity: Time O(d log d), Space O(d).
//
// AI-Hints:
//   - Use e.Other(id) to step across an edge.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the vertex IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if id does not exist.
//
// Complexity: Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(bucket))
	for v := range bucket {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}
