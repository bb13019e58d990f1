// Package dfs implements depth-first cycle-basis extraction on a core.Graph.
//
// What:
//
//   - CycleBasis: runs DFS from every unvisited vertex (ascending ID), walking
//     neighbours in ascending ID order while keeping the current root-to-vertex
//     path. Every non-tree edge to a vertex still on the path (a back edge)
//     closes one fundamental cycle: the path segment from that vertex to the
//     current one, plus the closing edge. For a simple undirected graph this
//     yields one cycle per back edge, i.e. a basis of the cycle space.
//   - Cycles are deduplicated by their sorted vertex set; cycles with two or
//     fewer vertices are discarded as degenerate.
//
// Why:
//
//   - The cycle space of the Rips 1-skeleton is the stand-in for H1 in the
//     bigraded module (no 2-simplices are quotiented out).
//
// Key Types & Constants:
//
//   - White, Gray, Black visitation markers.
//
// Complexity:
//
//   - CycleBasis: Time O(V + E·L) (L = longest cycle, for path slicing and
//     signatures), Memory O(V + Σ|cycles|).
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
package dfs
