package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/birips/core"
)

// ErrGraphNil indicates that a nil graph was passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that Prim's start vertex is not in the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string: MethodPrim or MethodKruskal.
//	Root   int:    start vertex for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with Root 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts over graph.
//
// Returns the MST edges, their total weight, and ErrUnknownMethod for an
// unrecognised method.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// Bottleneck returns the largest weight in mst, or 0 for an empty tree.
// For the MST of a complete distance graph it is the least radius at which
// every vertex lies in one component.
func Bottleneck(mst []core.Edge) float64 {
	var m float64
	for _, e := range mst {
		m = max(m, e.Weight)
	}

	return m
}
