// Package density implements density-based subsampling of a point cloud.
//
// For a neighbourhood radius p, the density γ(x) of a point x is the number
// of points y of the cloud (x itself included) with d(x,y) ≤ p. The subset
// S(a) keeps the points with γ(x) ≥ a.
//
// Contract:
//
//   - Threshold predicate is γ(x) ≥ a. Raising a never adds points, so
//     S(a) ⊇ S(a+1) for every a; S(0) is the whole cloud and S(a) is empty
//     for every a > N.
//   - Coincident points (equal coordinates) collapse into one entry of S(a).
//     This is intentional de-duplication: the subset is a set of locations.
//   - S(a) lists its points in first-occurrence cloud order so downstream
//     consumers see a reproducible ordering.
//
// Complexity:
//
//   - NewFilter: Time O(n²·d), Space O(n²) (distance matrix, released after γ).
//   - Subset:    Time O(n·d), Space O(n).
package density
