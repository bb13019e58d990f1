package density

import (
	"fmt"

	"github.com/katalvlaran/birips/pointcloud"
)

// Filter holds γ for one (cloud, p) pair. γ does not depend on the threshold
// a, so one Filter answers Subset(a) for every a without recounting.
// A Filter is immutable after NewFilter and safe for concurrent readers.
type Filter struct {
	cloud pointcloud.Cloud
	p     float64
	gamma []int
	max   int
}

// NewFilter validates the inputs and counts γ for every point of c.
//
// Errors:
//   - pointcloud.ErrInvalidParameter, pointcloud.ErrInconsistentGeometry,
//     pointcloud.ErrNonFinite from validation.
func NewFilter(c pointcloud.Cloud, p float64) (*Filter, error) {
	gamma, err := Gamma(c, p)
	if err != nil {
		return nil, fmt.Errorf("density: NewFilter: %w", err)
	}
	max := 0
	for _, g := range gamma {
		if g > max {
			max = g
		}
	}

	return &Filter{cloud: c.Clone(), p: p, gamma: gamma, max: max}, nil
}

// Gamma returns γ(x_i) for every point x_i of c: the count of points within
// distance p of x_i, inclusive, x_i itself included.
func Gamma(c pointcloud.Cloud, p float64) ([]int, error) {
	if err := pointcloud.ValidateRadius(p); err != nil {
		return nil, err
	}
	d, err := pointcloud.DistanceMatrix(c)
	if err != nil {
		return nil, err
	}
	n := len(c)
	gamma := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d.At(i, j) <= p {
				gamma[i]++
			}
		}
	}

	return gamma, nil
}

// Subset returns S(a): the de-duplicated points whose density is at least a,
// in first-occurrence order. The result is freshly allocated; points are
// shared with the Filter's private copy and must be treated as read-only.
func (f *Filter) Subset(a int) pointcloud.Cloud {
	seen := make(map[string]struct{}, len(f.cloud))
	out := make(pointcloud.Cloud, 0, len(f.cloud))
	for i, x := range f.cloud {
		if f.gamma[i] < a {
			continue
		}
		k := x.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, x)
	}

	return out
}

// Gamma returns γ of the i-th point of the cloud.
func (f *Filter) Gamma(i int) int { return f.gamma[i] }

// Densities returns a copy of γ for every point, in cloud order.
func (f *Filter) Densities() []int { return append([]int(nil), f.gamma...) }

// MaxGamma returns the largest density; S(a) is empty for every a above it.
func (f *Filter) MaxGamma() int { return f.max }

// Radius returns the neighbourhood radius p.
func (f *Filter) Radius() float64 { return f.p }

// Len returns the size N of the underlying cloud (duplicates included).
func (f *Filter) Len() int { return len(f.cloud) }

// Subset is a one-shot convenience: NewFilter(c, p).Subset(a).
func Subset(c pointcloud.Cloud, p float64, a int) (pointcloud.Cloud, error) {
	f, err := NewFilter(c, p)
	if err != nil {
		return nil, err
	}

	return f.Subset(a), nil
}
