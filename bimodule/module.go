package bimodule

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/birips/internal/metrics"
	"github.com/katalvlaran/birips/matrix"
	"github.com/katalvlaran/birips/pointcloud"
)

// Module is the assembled bigraded module: one Cell per bigrade of its
// Grid. It is immutable and safe for concurrent readers.
type Module struct {
	grid  *Grid
	cells [][]Cell // [a][r]
}

// Build runs BuildGrid once and assembles the module over it.
func Build(c pointcloud.Cloud, p float64, opts ...Option) (*Module, error) {
	g, err := BuildGrid(c, p, opts...)
	if err != nil {
		return nil, err
	}

	return Assemble(g), nil
}

// Assemble attaches identity, horizontal and vertical maps to every bigrade
// of g. The grid is read, never recomputed.
//
// Implementation:
//   - Stage 1: for a ∈ [0,N], r ∈ [0,RMax] read gen(a,r), gen(a+1,r) and
//     gen(a,r+1) with the boundary convention of Grid.at.
//   - Stage 2: Identity = IdentityMap(d); H and V via StructureMap.
//
// Complexity: O(N·RMax·(G² + G·L)) for G generators of L edges per cell.
func Assemble(g *Grid) *Module {
	m := &Module{grid: g, cells: make([][]Cell, g.n+1)}
	for a := 0; a <= g.n; a++ {
		m.cells[a] = make([]Cell, g.rMax+1)
		for r := 0; r <= g.rMax; r++ {
			gens := g.at(a, r)
			m.cells[a][r] = Cell{
				Generators: gens,
				Identity:   IdentityMap(len(gens)),
				Horizontal: StructureMap(gens, g.at(a+1, r)),
				Vertical:   StructureMap(gens, g.at(a, r+1)),
			}
		}
	}
	cells := (g.n + 1) * (g.rMax + 1)
	metrics.CellsAssembledTotal.Add(float64(cells))
	g.logger.Debug("module assembled", zap.Int("cells", cells))

	return m
}

// Grid returns the underlying generator grid.
func (m *Module) Grid() *Grid { return m.grid }

// N returns the largest density threshold.
func (m *Module) N() int { return m.grid.n }

// RMax returns the largest radius.
func (m *Module) RMax() int { return m.grid.rMax }

// Cell returns the cell at (a, r).
func (m *Module) Cell(a, r int) (Cell, error) {
	if !m.grid.Contains(a, r) {
		return Cell{}, fmt.Errorf("Module.Cell(%d,%d): %w", a, r, ErrOutOfGrid)
	}

	return m.cells[a][r], nil
}

// Each calls fn for every bigrade in canonical order (a ascending, then r
// ascending) until fn returns false.
func (m *Module) Each(fn func(Bigrade, Cell) bool) {
	for a, row := range m.cells {
		for r, cell := range row {
			if !fn(Bigrade{A: a, R: r}, cell) {
				return
			}
		}
	}
}

// Ranks returns the ranks of the horizontal and vertical maps at (a, r).
// A placeholder map has rank 0.
func (m *Module) Ranks(a, r int) (horizontal, vertical int, err error) {
	cell, err := m.Cell(a, r)
	if err != nil {
		return 0, 0, err
	}
	if horizontal, err = matrix.Rank(cell.Horizontal, 0); err != nil {
		return 0, 0, fmt.Errorf("Module.Ranks(%d,%d): %w", a, r, err)
	}
	if vertical, err = matrix.Rank(cell.Vertical, 0); err != nil {
		return 0, 0, fmt.Errorf("Module.Ranks(%d,%d): %w", a, r, err)
	}

	return horizontal, vertical, nil
}

// Commutes checks the square with lower-left corner (a, r):
//
//	V(a+1,r)·H(a,r) = H(a,r+1)·V(a,r)
//
// as maps gen(a,r) → gen(a+1,r+1). A path through an empty generator list
// is the zero map. Squares whose source or target list is empty commute
// trivially.
//
// Errors:
//   - ErrOutOfGrid unless a < N and r < RMax.
func (m *Module) Commutes(a, r int) (bool, error) {
	if !m.grid.Contains(a, r) || !m.grid.Contains(a+1, r+1) {
		return false, fmt.Errorf("Module.Commutes(%d,%d): %w", a, r, ErrOutOfGrid)
	}
	src := m.cells[a][r]
	dst := m.cells[a+1][r+1]
	if src.Dim() == 0 || dst.Dim() == 0 {
		return true, nil
	}

	right := m.cells[a+1][r] // via H first
	up := m.cells[a][r+1]    // via V first
	hv, err := compose(right.Vertical, src.Horizontal, right.Dim(), dst.Dim(), src.Dim())
	if err != nil {
		return false, fmt.Errorf("Module.Commutes(%d,%d): %w", a, r, err)
	}
	vh, err := compose(up.Horizontal, src.Vertical, up.Dim(), dst.Dim(), src.Dim())
	if err != nil {
		return false, fmt.Errorf("Module.Commutes(%d,%d): %w", a, r, err)
	}

	return hv.Equal(vh), nil
}

// compose returns outer·inner, or the rows×cols zero map when the middle
// space is empty.
func compose(outer, inner *matrix.Dense, mid, rows, cols int) (*matrix.Dense, error) {
	if mid == 0 {
		return zeroMap(rows, cols), nil
	}

	return matrix.Mul(outer, inner)
}
