// SPDX-License-Identifier: MIT

package pointcloud

import (
	"strconv"
	"strings"
)

// keySep separates coordinates inside a Key.
const keySep = ","

// Point is a coordinate tuple. All points of one Cloud share a dimension.
type Point []float64

// Cloud is an ordered sequence of points.
type Cloud []Point

// Dim returns the number of coordinates of p.
func (p Point) Dim() int { return len(p) }

// Equal reports exact coordinate equality (0 and -0 compare equal).
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	return append(Point(nil), p...)
}

// Key returns the exact-coordinate identity of p.
// Two points have the same Key iff Equal reports true; -0 is folded into 0
// so the key agrees with float equality.
//
// Complexity: O(d).
func (p Point) Key() string {
	var sb strings.Builder
	for i, x := range p {
		if i > 0 {
			sb.WriteString(keySep)
		}
		if x == 0 {
			x = 0 // folds -0
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}

	return sb.String()
}

// String renders p as "(x, y, ...)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Len returns the number of points.
func (c Cloud) Len() int { return len(c) }

// Dim returns the dimension of the first point, or 0 for an empty cloud.
// It does not validate the rest of the cloud; see Validate.
func (c Cloud) Dim() int {
	if len(c) == 0 {
		return 0
	}

	return len(c[0])
}

// Clone deep-copies the cloud so callers may keep mutating their input.
func (c Cloud) Clone() Cloud {
	out := make(Cloud, len(c))
	for i, p := range c {
		out[i] = p.Clone()
	}

	return out
}

// Unique returns the points of c with coincident duplicates removed,
// keeping the first occurrence of every Key and the original order.
func (c Cloud) Unique() Cloud {
	seen := make(map[string]struct{}, len(c))
	out := make(Cloud, 0, len(c))
	for _, p := range c {
		k := p.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	return out
}
