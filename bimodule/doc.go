// Package bimodule assembles the bigraded persistence module of a point
// cloud: cycle generators indexed by a density threshold a and a Rips
// radius r, together with the linear maps between neighbouring bigrades.
//
// Pipeline:
//
//	cloud, p ──BuildGrid──▶ Grid  gen(a, r) for a ∈ [0,N], r ∈ [0,RMax]
//	         ──Assemble───▶ Module cell(a, r) = {gen, I, H, V}
//
// where
//
//   - gen(a, r) = homology generators of the Rips graph at radius r over
//     S(a), the points of density ≥ a (package density);
//   - I is the d×d identity on gen(a, r), or a 1×1 zero when d = 0;
//   - H = StructureMap(gen(a, r), gen(a+1, r)) raises the density threshold;
//   - V = StructureMap(gen(a, r), gen(a, r+1)) grows the radius.
//
// Boundaries: gen(N+1, r) is empty, and gen(a, RMax+1) = gen(a, RMax)
// because the Rips graph is already complete at RMax.
//
// The grid is computed exactly once per Build. Construction fans out over
// density thresholds on a bounded errgroup; results are placed by index so
// the module does not depend on scheduling.
package bimodule
