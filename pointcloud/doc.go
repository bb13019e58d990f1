// SPDX-License-Identifier: MIT

// Package pointcloud defines the finite metric samples the bigraded Rips
// construction runs on: points in a fixed-dimension real vector space,
// validation of a cloud, and the pairwise Euclidean distance utility.
//
// What:
//
//   - Point / Cloud: coordinate tuples and ordered sequences of them.
//   - Key: exact-coordinate identity, used to collapse coincident points and
//     to compare cycle generators structurally across bigrades.
//   - Distance, DistanceMatrix, Diameter: L2 geometry backed by gonum.
//
// Determinism:
//
//   - Cloud order is significant only for tie-breaking; every routine in this
//     package preserves it.
//
// Errors:
//
//   - ErrInvalidParameter      empty cloud, or negative / non-finite radius
//   - ErrInconsistentGeometry  mismatched or zero dimensionality
//   - ErrNonFinite             NaN or ±Inf coordinate
package pointcloud
