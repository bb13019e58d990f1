package bimodule

import (
	"fmt"

	"github.com/katalvlaran/birips/homology"
	"github.com/katalvlaran/birips/matrix"
)

// Bigrade indexes the module: A is the density threshold, R the radius.
type Bigrade struct {
	A, R int
}

// String renders "(a,r)".
func (b Bigrade) String() string { return fmt.Sprintf("(%d,%d)", b.A, b.R) }

// Cell is the module data attached to one bigrade.
//
//   - Generators: canonical generator list gen(a, r).
//   - Identity: d×d identity, d = len(Generators); 1×1 zero when d = 0.
//   - Horizontal: map gen(a, r) → gen(a+1, r).
//   - Vertical: map gen(a, r) → gen(a, r+1).
//
// Matrices are owned by the Module; treat them as read-only.
type Cell struct {
	Generators []homology.Generator
	Identity   *matrix.Dense
	Horizontal *matrix.Dense
	Vertical   *matrix.Dense
}

// Dim returns the number of generators.
func (c Cell) Dim() int { return len(c.Generators) }
