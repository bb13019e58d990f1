// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// Neighbours are expanded in ascending ID order, so visit order and
// component listings are deterministic.
//
// Components feeds the cycle-space dimension |E| − |V| + c of a
// filtration layer (see CycleRank).
package bfs
