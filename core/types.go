// Package core defines the central Graph and Edge types and the
// thread-safe primitives for building and querying them.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates a negative vertex ID.
	ErrInvalidVertexID = errors.New("core: invalid vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN, infinite or negative edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// From < To always holds: AddEdge normalizes the endpoint order, so an edge
// has one canonical spelling regardless of how it was inserted.
type Edge struct {
	// ID is the insertion index of the edge (0, 1, 2, ...).
	ID int

	// From is the smaller endpoint.
	From int

	// To is the larger endpoint.
	To int

	// Weight is the filtration value (edge length).
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// The result is meaningless if id is not an endpoint of e.
func (e *Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes internal maps for n vertices.
// Panics on negative n (programmer error).
func WithVertexCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithVertexCapacity(n<0)")
	}
	return func(g *Graph) { g.capacity = n }
}

// Graph is the undirected weighted simple graph.
//
// mu guards vertices, edges and adjacency.
// adjacency[u][v] points at the unique edge {u,v}; it is stored for both
// endpoints.
type Graph struct {
	mu sync.RWMutex

	capacity int // vertex capacity hint

	vertices  map[int]struct{}
	edges     []*Edge // edge ID → Edge
	adjacency map[int]map[int]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity) for pre-sizing, O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[int]struct{}, g.capacity)
	g.adjacency = make(map[int]map[int]*Edge, g.capacity)

	return g
}
