// Package dfs helper functions shared by cycle extraction and its callers.
package dfs

import (
	"sort"
	"strconv"
	"strings"
)

// VertexSetSig returns the comma-joined sorted vertex IDs of vs.
// Two cycles with the same vertex set share a signature regardless of
// rotation or direction. A trailing repeat of the first vertex (closed walk)
// is ignored.
// Time Complexity: O(n log n).
func VertexSetSig(vs []int) string {
	n := len(vs)
	if n > 1 && vs[0] == vs[n-1] {
		n-- // closed walk
	}
	sorted := append([]int(nil), vs[:n]...)
	sort.Ints(sorted)

	var sb strings.Builder
	for i, v := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// WalkEdges converts a closed walk [v0, ..., vk, v0] into its edge list
// [(v0,v1), (v1,v2), ..., (vk,v0)], keeping walk orientation.
// Time Complexity: O(n).
func WalkEdges(walk []int) [][2]int {
	if len(walk) < 2 {
		return nil
	}
	out := make([][2]int, 0, len(walk)-1)
	for i := 0; i+1 < len(walk); i++ {
		out = append(out, [2]int{walk[i], walk[i+1]})
	}

	return out
}
