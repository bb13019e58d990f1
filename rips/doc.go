// SPDX-License-Identifier: MIT

// Package rips enumerates the 1-skeleton of the Vietoris–Rips complex of a
// point cloud and groups its edges into filtration layers.
//
// What:
//
//   - Skeleton(c, r, tol): every pair i<j with d(i,j) ≤ r + tol, annotated
//     with its filtration value d(i,j), sorted by (value, i, j).
//   - Layers(edges, tol): consecutive runs of the sorted skeleton whose values
//     lie within tol of the run's first value. With tol = 0 a layer is exactly
//     the set of edges sharing one filtration value.
//   - Layer.Graph(): the layer's edges as a core.Graph over point indices.
//
// Why a tolerance:
//
//   - Edge lengths are float64 results of a square root. Geometrically equal
//     lengths (the sides of a regular polygon, say) routinely differ in the
//     last bit, which would scatter one polygon across several layers.
//     DefaultTolerance absorbs that noise; pass 0 for exact grouping.
//
// Determinism:
//
//   - Output order is a pure function of the cloud order and distances.
//
// Complexity:
//
//   - Skeleton: Time O(n²·d + E log E), Space O(E).
//   - Layers:   Time O(E), Space O(E).
package rips
