// Package core provides the thread-safe in-memory graph that the Rips
// layers are built on.
//
// The Graph G = (V,E) is undirected and simple: no self-loops, no parallel
// edges. Vertices are non-negative integers, in practice indices into a
// point cloud, so "vertex order" and "point order" coincide. Every edge
// carries a float64 weight, the filtration value at which it appears.
//
// Why a dedicated graph?
//
//   - Deterministic iteration: Vertices(), NeighborIDs() and Neighbors() are
//     sorted ascending, so DFS-based algorithms that walk them are
//     reproducible run to run.
//   - Constant-time edge queries via adjacency[from][to] = *Edge, mirrored for
//     the undirected endpoint.
//   - A single sync.RWMutex guards the catalog; graphs are normally built by
//     one goroutine and then read by many.
//
// Configuration Options (GraphOption):
//
//	– WithVertexCapacity(n int)
//	    Pre-sizes the vertex catalog and adjacency maps.
//
// Core Methods:
//
//	AddVertex(id int) error                                   // O(1)
//	HasVertex(id int) bool                                    // O(1)
//	AddEdge(from, to int, weight float64) (edgeID int, error) // O(1)
//	HasEdge(from, to int) bool                                // O(1)
//	GetEdge(edgeID int) (*Edge, error)                        // O(1)
//	Neighbors(id int) ([]*Edge, error)                        // O(d log d)
//	NeighborIDs(id int) ([]int, error)                        // O(d log d)
//	Vertices() []int                                          // O(V log V)
//	Edges() []*Edge                                           // O(E)
//	Degree(id int) (int, error)                               // O(1)
//
// Errors:
//
//	ErrInvalidVertexID     - negative vertex ID.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - NaN, ±Inf or negative weight.
//	ErrLoopNotAllowed      - from == to.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core
