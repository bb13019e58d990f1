package homology

import (
	"sort"
	"strings"

	"github.com/katalvlaran/birips/pointcloud"
)

// Key separators. Formatted floats never contain them.
const (
	endpointSep = "|"
	edgeSep     = ";"
)

// Edge is a 1-simplex given by its endpoint coordinates.
type Edge [2]pointcloud.Point

// Equal reports exact coordinate equality of both endpoints, in order.
func (e Edge) Equal(f Edge) bool {
	return e[0].Equal(f[0]) && e[1].Equal(f[1])
}

// Generator is a cycle: an ordered closed walk of edges.
// Points are shared with the cloud they came from; treat them as read-only.
type Generator []Edge

// Equal reports structural equality: same length and pairwise Equal edges
// in the same order. A rotated or reversed walk is a different value.
func (g Generator) Equal(h Generator) bool {
	if len(g) != len(h) {
		return false
	}
	for i := range g {
		if !g[i].Equal(h[i]) {
			return false
		}
	}

	return true
}

// Key returns a string that is equal for two generators iff Equal holds.
// Use it to index generators in maps.
func (g Generator) Key() string {
	var sb strings.Builder
	for i, e := range g {
		if i > 0 {
			sb.WriteString(edgeSep)
		}
		sb.WriteString(e[0].Key())
		sb.WriteString(endpointSep)
		sb.WriteString(e[1].Key())
	}

	return sb.String()
}

// Vertices returns the walk's vertices in order, without the closing repeat.
func (g Generator) Vertices() pointcloud.Cloud {
	out := make(pointcloud.Cloud, len(g))
	for i, e := range g {
		out[i] = e[0]
	}

	return out
}

// VertexSetKey returns the sorted vertex keys joined; two generators share it
// iff they visit the same set of points.
func (g Generator) VertexSetKey() string {
	keys := make([]string, len(g))
	for i, e := range g {
		keys[i] = e[0].Key()
	}
	sort.Strings(keys)

	return strings.Join(keys, edgeSep)
}

// String renders the walk as "(x0, y0) → (x1, y1) → ... → (x0, y0)".
func (g Generator) String() string {
	if len(g) == 0 {
		return "∅"
	}
	var sb strings.Builder
	for _, e := range g {
		sb.WriteString(e[0].String())
		sb.WriteString(" → ")
	}
	sb.WriteString(g[len(g)-1][1].String())

	return sb.String()
}

// Index returns the position of the first generator in gs structurally
// equal to g, or -1.
func Index(gs []Generator, g Generator) int {
	for i, h := range gs {
		if h.Equal(g) {
			return i
		}
	}

	return -1
}
