package dfs

import (
	"fmt"

	"github.com/katalvlaran/birips/core"
)

// walker carries the DFS state of one CycleBasis call.
type walker struct {
	g      *core.Graph
	state  map[int]int    // White/Gray/Black per vertex
	onPath map[int]int    // vertex → index in path, Gray vertices only
	path   []int          // current DFS path (stack)
	seen   map[string]int // sorted-vertex-set signature → cycle index
	cycles [][]int        // closed walks [v0, v1, ..., vk, v0]
}

// CycleBasis returns the fundamental cycles of g found by DFS back-edge
// detection, in discovery order.
//
// Each cycle is a closed walk [v0, v1, ..., vk, v0] where v0 is the back-edge
// target (the vertex nearest the root) and v1..vk follow the DFS path; the
// walk's consecutive pairs are exactly the cycle's edges.
//
// Returns (nil, nil) for an empty or acyclic graph.
//
// Errors:
//   - ErrGraphNil: g == nil.
//   - wrapped core errors if a neighbour lookup fails.
func CycleBasis(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	w := &walker{
		g:      g,
		state:  make(map[int]int, len(verts)),
		onPath: make(map[int]int, len(verts)),
		path:   make([]int, 0, len(verts)),
		seen:   make(map[string]int),
	}
	for _, v := range verts {
		if w.state[v] != White {
			continue
		}
		if err := w.visit(v, -1); err != nil {
			return nil, fmt.Errorf("dfs: CycleBasis: %w", err)
		}
	}

	return w.cycles, nil
}

// visit explores id, skipping the tree edge back to parent (-1 for roots).
func (w *walker) visit(id, parent int) error {
	w.state[id] = Gray
	w.onPath[id] = len(w.path)
	w.path = append(w.path, id)

	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%d): %w", id, err)
	}
	for _, nbr := range nbrs {
		if nbr == parent {
			continue
		}
		if idx, ok := w.onPath[nbr]; ok {
			w.record(idx)
			continue
		}
		if w.state[nbr] == White {
			if err = w.visit(nbr, id); err != nil {
				return err
			}
		}
	}

	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, id)
	w.state[id] = Black

	return nil
}

// record closes the cycle path[idx:] with the back edge to path[idx].
func (w *walker) record(idx int) {
	seg := w.path[idx:]
	if len(seg) < minCycleVertices {
		return
	}
	sig := VertexSetSig(seg)
	if _, dup := w.seen[sig]; dup {
		return
	}
	closed := make([]int, 0, len(seg)+1)
	closed = append(closed, seg...)
	closed = append(closed, seg[0])
	w.seen[sig] = len(w.cycles)
	w.cycles = append(w.cycles, closed)
}
