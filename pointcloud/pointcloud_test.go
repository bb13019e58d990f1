// SPDX-License-Identifier: MIT

package pointcloud_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/birips/pointcloud"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		cloud pointcloud.Cloud
		want  error
	}{
		{"empty", nil, pointcloud.ErrInvalidParameter},
		{"zero-dim", pointcloud.Cloud{{}}, pointcloud.ErrInconsistentGeometry},
		{"mixed-dim", pointcloud.Cloud{{0, 0}, {1}}, pointcloud.ErrInconsistentGeometry},
		{"nan", pointcloud.Cloud{{0, 0}, {math.NaN(), 1}}, pointcloud.ErrNonFinite},
		{"inf", pointcloud.Cloud{{math.Inf(1)}}, pointcloud.ErrNonFinite},
		{"single", pointcloud.Cloud{{3, 4}}, nil},
		{"ok", pointcloud.Cloud{{0, 0}, {1, 1}, {2, 2}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := pointcloud.Validate(tc.cloud)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateRadius(t *testing.T) {
	for _, p := range []float64{-1, -1e-300, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, pointcloud.ValidateRadius(p), pointcloud.ErrInvalidParameter, "p=%v", p)
	}
	assert.NoError(t, pointcloud.ValidateRadius(0))
	assert.NoError(t, pointcloud.ValidateRadius(0.5))
}

func TestKey_FoldsNegativeZero(t *testing.T) {
	a := pointcloud.Point{0, 1.5}
	b := pointcloud.Point{math.Copysign(0, -1), 1.5}
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), pointcloud.Point{0, 1.25}.Key())
}

func TestUnique_KeepsFirstOccurrence(t *testing.T) {
	c := pointcloud.Cloud{{1, 1}, {0, 0}, {1, 1}, {2, 2}, {0, 0}}
	assert.Equal(t, pointcloud.Cloud{{1, 1}, {0, 0}, {2, 2}}, c.Unique())
}

func TestDistanceMatrix(t *testing.T) {
	c := pointcloud.Cloud{{0, 0}, {3, 4}, {0, 8}}
	d, err := pointcloud.DistanceMatrix(c)
	require.NoError(t, err)

	assert.Equal(t, 3, d.SymmetricDim())
	assert.InDelta(t, 5.0, d.At(0, 1), 1e-12)
	assert.InDelta(t, 5.0, d.At(1, 2), 1e-12)
	assert.InDelta(t, 8.0, d.At(2, 0), 1e-12)
	assert.Equal(t, 0.0, d.At(1, 1))
	assert.Equal(t, d.At(0, 2), d.At(2, 0))

	diam, err := pointcloud.Diameter(c)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, diam, 1e-12)
}

func TestDistance_Symmetric(t *testing.T) {
	a := pointcloud.Point{0.1, 0.7, -3.3}
	b := pointcloud.Point{5.9, -0.2, 1e-3}
	assert.Equal(t, pointcloud.Distance(a, b), pointcloud.Distance(b, a))
}

func TestDiameter_SinglePoint(t *testing.T) {
	diam, err := pointcloud.Diameter(pointcloud.Cloud{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, diam)
}
