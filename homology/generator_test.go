package homology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/birips/homology"
	"github.com/katalvlaran/birips/pointcloud"
)

var square = pointcloud.Cloud{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestGenerator_EqualAndKey(t *testing.T) {
	g := walk(square, 0, 1, 2, 3)
	same := walk(square.Clone(), 0, 1, 2, 3)
	rotated := walk(square, 1, 2, 3, 0)
	reversed := walk(square, 0, 3, 2, 1)

	assert.True(t, g.Equal(same))
	assert.Equal(t, g.Key(), same.Key())

	assert.False(t, g.Equal(rotated))
	assert.NotEqual(t, g.Key(), rotated.Key())
	assert.False(t, g.Equal(reversed))
	assert.False(t, g.Equal(g[:3]))

	// same point set, different walks.
	assert.Equal(t, g.VertexSetKey(), rotated.VertexSetKey())
	assert.Equal(t, g.VertexSetKey(), reversed.VertexSetKey())
}

func TestGenerator_NegativeZero(t *testing.T) {
	negZero := pointcloud.Cloud{{0, 0}, {1, 0}, {1, 1}, {-1 * zero(), 1}}
	assert.True(t, walk(square, 0, 1, 2, 3).Equal(walk(negZero, 0, 1, 2, 3)))
	assert.Equal(t, walk(square, 0, 1, 2, 3).Key(), walk(negZero, 0, 1, 2, 3).Key())
}

func zero() float64 { return 0 }

func TestGenerator_VerticesAndString(t *testing.T) {
	g := walk(square, 0, 1, 2, 3)
	assert.Equal(t, square, g.Vertices())
	assert.Equal(t, "(0, 0) → (1, 0) → (1, 1) → (0, 1) → (0, 0)", g.String())
	assert.Equal(t, "∅", homology.Generator(nil).String())
}

func TestIndex(t *testing.T) {
	a := walk(square, 0, 1, 2)
	b := walk(square, 0, 2, 3)
	gs := []homology.Generator{a, b, walk(square, 0, 1, 2)}

	assert.Equal(t, 0, homology.Index(gs, walk(square.Clone(), 0, 1, 2)))
	assert.Equal(t, 1, homology.Index(gs, b))
	assert.Equal(t, -1, homology.Index(gs, walk(square, 1, 2, 3)))
	assert.Equal(t, -1, homology.Index(nil, a))
}
