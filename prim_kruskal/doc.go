// Package prim_kruskal computes minimum spanning trees of an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// In a Rips filtration the MST carries the 0-dimensional story: the sorted
// MST weights are exactly the radii at which connected components merge,
// and the largest one (Bottleneck) is the least radius at which the whole
// point set is connected.
//
// Algorithms Provided
//
//   - Kruskal(g) sorts all edges by weight (stable on edge ID) and merges
//     components with a union-find. Time O(E log E), space O(V + E).
//   - Prim(g, root) grows one tree from root with a min-heap of candidate
//     edges. Time O(E log V), space O(V + E).
//
// Both return the same total weight on every connected graph; with distinct
// weights they return the same edge set.
//
// Determinism
//
// Kruskal breaks weight ties by edge ID. Prim breaks them by edge ID as well
// through the heap ordering, so repeated runs on the same graph agree.
//
// Errors
//
//   - ErrGraphNil for a nil graph.
//   - ErrDisconnected when |V| = 0 or the graph has more than one component.
//   - ErrRootNotFound when Prim's root is not a vertex.
package prim_kruskal
