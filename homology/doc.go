// Package homology turns Rips filtration layers into 1-dimensional cycle
// generators expressed in coordinates.
//
// A Generator is an ordered closed walk of edges, each edge being the pair
// of its endpoint coordinates. Coordinates rather than indices make
// generators comparable across different subsamples of one cloud: the same
// loop found at two bigrades is the same value, whatever index its points
// had in either subset.
//
// Extraction contract (Extract / Extractor.At):
//
//   - Build the Rips 1-skeleton at radius r and group it into layers by
//     filtration value, ascending.
//   - For each layer, treat its edges alone as a graph and take its DFS cycle
//     basis (see package dfs); tree layers contribute nothing.
//   - Concatenate in layer order, then discovery order within a layer. This
//     is the canonical ordering structure maps index into.
//
// The generators approximate H1 by the cycle space of the 1-skeleton; cycles
// bounding filled triangles are not quotiented out.
package homology
