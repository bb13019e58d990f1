// Package matrix provides the small dense linear-algebra surface used by
// structure maps: a row-major Dense with checked accessors, products,
// transposes, structural equality, and a numerically robust rank backed by
// gonum's SVD.
//
// Matrices here are 0/1 incidence-like maps between generator lists, so the
// package favours exactness (bitwise Equal) and determinism (fixed loop
// orders) over raw throughput.
package matrix
