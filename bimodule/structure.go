package bimodule

import (
	"github.com/katalvlaran/birips/homology"
	"github.com/katalvlaran/birips/matrix"
)

// StructureMap returns the 0/1 matrix sending each source generator to the
// target generator equal to it.
//
// Shape is len(target)×len(source), except that an empty side counts as one
// row or column:
//
//	source \ target   empty          non-empty
//	empty             1×1 zero       len(target)×1 zero
//	non-empty         1×len(source)  len(target)×len(source)
//
// Entry (i, j) is 1 iff target[i] is the first target structurally equal to
// source[j] (homology.Generator.Equal). A source generator with no equal
// target leaves its column zero.
//
// Complexity: O((|S|+|T|)·L) for generators of L edges, plus the O(|S|·|T|)
// zero fill.
func StructureMap(source, target []homology.Generator) *matrix.Dense {
	m := zeroMap(max(len(target), 1), max(len(source), 1))
	if len(source) == 0 || len(target) == 0 {
		return m
	}

	first := make(map[string]int, len(target))
	for i, g := range target {
		k := g.Key()
		if _, seen := first[k]; !seen {
			first[k] = i
		}
	}
	for j, g := range source {
		if i, ok := first[g.Key()]; ok {
			_ = m.Set(i, j, 1) // in range by construction
		}
	}

	return m
}

// IdentityMap returns the d×d identity, or the 1×1 zero placeholder when
// d = 0.
func IdentityMap(d int) *matrix.Dense {
	if d == 0 {
		return matrix.Placeholder()
	}
	id, err := matrix.NewIdentity(d)
	if err != nil {
		return matrix.Placeholder()
	}

	return id
}

// zeroMap allocates a rows×cols zero matrix; both are ≥ 1 at every call site.
func zeroMap(rows, cols int) *matrix.Dense {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return matrix.Placeholder()
	}

	return m
}
