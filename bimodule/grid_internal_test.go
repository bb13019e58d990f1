package bimodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/birips/pointcloud"
)

func TestSaturationRadius(t *testing.T) {
	assert.Equal(t, 0, saturationRadius(0, 1e-9))
	assert.Equal(t, 2, saturationRadius(2, 0))
	assert.Equal(t, 2, saturationRadius(2.0000000000000004, 1e-9))
	assert.Equal(t, 3, saturationRadius(2.0000000000000004, 0))
	assert.Equal(t, 3, saturationRadius(2.5, 1e-9))
}

func TestGridAt_BoundaryConvention(t *testing.T) {
	square := pointcloud.Cloud{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	g, err := BuildGrid(square, 0.5)
	require.NoError(t, err)
	require.Equal(t, 2, g.RMax())

	assert.Nil(t, g.at(g.N()+1, 0))
	assert.Len(t, g.at(0, g.RMax()+1), len(g.gens[0][g.RMax()]))
	assert.Len(t, g.at(0, 1), 1)
}
