package homology_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/birips/builder"
	"github.com/katalvlaran/birips/homology"
	"github.com/katalvlaran/birips/pointcloud"
)

// twoHexagons is two unit hexagons 20 apart; indices 0..5 and 6..11.
func twoHexagons(t testing.TB) pointcloud.Cloud {
	t.Helper()
	c, err := builder.BuildCloud(nil,
		builder.Hexagon(pointcloud.Point{0, 0}, 1),
		builder.Hexagon(pointcloud.Point{20, 0}, 1),
	)
	require.NoError(t, err)
	require.Len(t, c, 12)

	return c
}

// walk builds the generator visiting c[idx[0]] → ... → c[idx[0]].
func walk(c pointcloud.Cloud, idx ...int) homology.Generator {
	g := make(homology.Generator, len(idx))
	for i, v := range idx {
		g[i] = homology.Edge{c[v], c[idx[(i+1)%len(idx)]]}
	}

	return g
}

func sameGenerators(a, b []homology.Generator) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func TestExtract_TwoHexagons(t *testing.T) {
	c := twoHexagons(t)

	gens, err := homology.Extract(c, 0.99)
	require.NoError(t, err)
	assert.Empty(t, gens)

	gens, err = homology.Extract(c, 1.01)
	require.NoError(t, err)
	require.Len(t, gens, 2)
	assert.True(t, gens[0].Equal(walk(c, 0, 1, 2, 3, 4, 5)), gens[0].String())
	assert.True(t, gens[1].Equal(walk(c, 6, 7, 8, 9, 10, 11)), gens[1].String())

	// short diagonals (√3) add the two inscribed triangles of each hexagon.
	gens, err = homology.Extract(c, 1.75)
	require.NoError(t, err)
	require.Len(t, gens, 6)
	assert.True(t, gens[2].Equal(walk(c, 0, 2, 4)), gens[2].String())
	assert.True(t, gens[3].Equal(walk(c, 1, 3, 5)), gens[3].String())
	assert.True(t, gens[4].Equal(walk(c, 6, 8, 10)), gens[4].String())
	assert.True(t, gens[5].Equal(walk(c, 7, 9, 11)), gens[5].String())

	// long diagonals form a matching: no new cycle.
	gens, err = homology.Extract(c, 2.5)
	require.NoError(t, err)
	assert.Len(t, gens, 6)
}

func TestExtract_ExactToleranceSplitsNoisyLayer(t *testing.T) {
	// with exact grouping the hexagon's ≈1 sides may fall into several
	// layers, none of which closes a loop on its own. Only assert the
	// tolerant default sees the loop and that tol=0 never sees more.
	c := twoHexagons(t)

	tolerant, err := homology.Extract(c, 1.01)
	require.NoError(t, err)
	exact, err := homology.Extract(c, 1.01, homology.WithTolerance(0))
	require.NoError(t, err)

	assert.Len(t, tolerant, 2)
	assert.LessOrEqual(t, len(exact), len(tolerant))
}

func TestExtract_Trivial(t *testing.T) {
	gens, err := homology.Extract(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, gens)

	gens, err = homology.Extract(pointcloud.Cloud{{1, 2}}, 5)
	require.NoError(t, err)
	assert.Empty(t, gens)

	// a path is a tree at every radius below the closing distance.
	path := pointcloud.Cloud{{0, 0}, {1, 0}, {2, 0}}
	gens, err = homology.Extract(path, 1)
	require.NoError(t, err)
	assert.Empty(t, gens)
}

func TestExtract_Errors(t *testing.T) {
	_, err := homology.Extract(pointcloud.Cloud{{0, 0}, {1}}, 1)
	assert.ErrorIs(t, err, pointcloud.ErrInconsistentGeometry)

	_, err = homology.Extract(pointcloud.Cloud{{0, math.NaN()}}, 1)
	assert.ErrorIs(t, err, pointcloud.ErrNonFinite)

	_, err = homology.NewExtractor(pointcloud.Cloud{{0, 0}, {1}})
	assert.ErrorIs(t, err, pointcloud.ErrInconsistentGeometry)
}

func TestWithTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { homology.WithTolerance(-1) })
	assert.Panics(t, func() { homology.WithTolerance(math.NaN()) })
	assert.NotPanics(t, func() { homology.WithTolerance(0) })
}

func TestExtractor_MatchesExtract(t *testing.T) {
	c := twoHexagons(t)
	x, err := homology.NewExtractor(c)
	require.NoError(t, err)

	// sides, short diagonals, long diagonals, then the bridges.
	require.Greater(t, x.Layers(), 3)
	assert.InDelta(t, 1, x.LayerValue(0), 1e-12)
	assert.InDelta(t, math.Sqrt(3), x.LayerValue(1), 1e-12)
	assert.InDelta(t, 2, x.LayerValue(2), 1e-12)
	assert.Greater(t, x.LayerValue(3), 17.0)
	assert.GreaterOrEqual(t, x.Total(), 6)

	for _, r := range []float64{0, 0.5, 0.99, 1, 1.01, 1.73, 1.75, 2, 2.5, 30} {
		want, err := homology.Extract(c, r)
		require.NoError(t, err)
		got, err := x.At(r)
		require.NoError(t, err)
		assert.True(t, sameGenerators(want, got), "r=%v", r)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	c, err := builder.BuildCloud([]builder.BuilderOption{builder.WithSeed(7)},
		builder.Uniform(25, pointcloud.Point{0, 0}, pointcloud.Point{4, 4}),
	)
	require.NoError(t, err)

	first, err := homology.Extract(c, 1.5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := homology.Extract(c, 1.5)
		require.NoError(t, err)
		assert.True(t, sameGenerators(first, again))
	}
}

// gridCloud decodes coords pairwise into points on a small integer lattice,
// which produces many equal distances and coincident points.
func gridCloud(coords []int) pointcloud.Cloud {
	c := make(pointcloud.Cloud, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		c = append(c, pointcloud.Point{float64(coords[i]), float64(coords[i+1])})
	}

	return c
}

func TestExtract_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 60
	properties := gopter.NewProperties(params)

	cloudGen := gen.SliceOfN(16, gen.IntRange(0, 3))
	radiusGen := gen.Float64Range(0, 5)

	properties.Property("Extractor.At equals Extract", prop.ForAll(
		func(coords []int, r float64) bool {
			c := gridCloud(coords)
			x, err := homology.NewExtractor(c)
			if err != nil {
				return false
			}
			got, err := x.At(r)
			if err != nil {
				return false
			}
			want, err := homology.Extract(c, r)
			if err != nil {
				return false
			}

			return sameGenerators(want, got)
		},
		cloudGen, radiusGen,
	))

	properties.Property("generators are closed walks with distinct vertex sets", prop.ForAll(
		func(coords []int, r float64) bool {
			gens, err := homology.Extract(gridCloud(coords), r)
			if err != nil {
				return false
			}
			seen := map[string]bool{}
			for _, g := range gens {
				if len(g) < 3 || !g[0][0].Equal(g[len(g)-1][1]) {
					return false
				}
				for i := 1; i < len(g); i++ {
					if !g[i-1][1].Equal(g[i][0]) {
						return false
					}
				}
				k := g.VertexSetKey()
				if seen[k] {
					return false
				}
				seen[k] = true
			}

			return true
		},
		cloudGen, radiusGen,
	))

	properties.TestingRun(t)
}

func TestExtractor_CycleRank(t *testing.T) {
	c := twoHexagons(t)
	x, err := homology.NewExtractor(c)
	require.NoError(t, err)

	for _, tc := range []struct {
		r    float64
		want int
	}{
		{0.5, 0},
		{1.01, 2},
		// two triangles per hexagon share no edge with the sides.
		{1.75, 6},
		// long diagonals: a 3-edge matching on 6 vertices, rank 0.
		{2.5, 6},
	} {
		got, err := x.CycleRank(tc.r)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "r=%v", tc.r)
	}
}

func TestExtractor_CycleRankBoundsGenerators(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("len(At(r)) <= CycleRank(r)", prop.ForAll(
		func(coords []int, r float64) bool {
			x, err := homology.NewExtractor(gridCloud(coords))
			if err != nil {
				return false
			}
			gens, err := x.At(r)
			if err != nil {
				return false
			}
			rank, err := x.CycleRank(r)

			return err == nil && len(gens) <= rank
		},
		gen.SliceOfN(16, gen.IntRange(0, 3)), gen.Float64Range(0, 5),
	))
	properties.TestingRun(t)
}
