// Package birips computes bigraded Rips persistence modules of planar point
// clouds.
//
// A cloud is filtered two ways at once: by local density (keep the points
// with at least a neighbours within radius p) and by scale (connect points
// at distance at most r). Every bigrade (a, r) gets the 1-cycle generators
// of the Rips graph of the dense subset, and neighbouring bigrades are joined
// by 0/1 structure maps that match generators by exact coordinates.
//
// Packages, bottom-up:
//
//	pointcloud/    Point, Cloud, validation and distances
//	core/          thread-safe undirected weighted graph on int vertex IDs
//	bfs/, dfs/     traversals; connected components, cycle rank and the DFS cycle basis
//	prim_kruskal/  minimum spanning trees; connectivity radius of a subset
//	rips/          Rips 1-skeleton and its filtration layers
//	density/       density counts γ(x) and threshold subsets S(a)
//	homology/      cycle generators at a radius, memoised over the filtration
//	matrix/        dense 0/1 matrices, products and gonum-backed rank
//	bimodule/      the generator grid, structure maps and the assembled module
//	builder/       deterministic synthetic clouds (circles, hexagons, clusters)
//	cmd/birips/    command-line driver printing a module summary
//
// Quick start:
//
//	m, err := bimodule.Build(cloud, 0.5, bimodule.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	cell, _ := m.Cell(1, 2)
//	fmt.Println(cell.Dim(), cell.Vertical)
package birips
