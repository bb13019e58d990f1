package homology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/birips/pointcloud"
)

func TestUniqueVertexSets_KeepsFirst(t *testing.T) {
	p := pointcloud.Cloud{{0, 0}, {1, 0}, {0, 1}, {5, 5}}
	low := Generator{{p[0], p[1]}, {p[1], p[2]}, {p[2], p[0]}}
	high := Generator{{p[0], p[2]}, {p[2], p[1]}, {p[1], p[0]}}
	other := Generator{{p[0], p[1]}, {p[1], p[3]}, {p[3], p[0]}}

	out := uniqueVertexSets([]Generator{low, other, high})
	assert.Len(t, out, 2)
	assert.True(t, out[0].Equal(low))
	assert.True(t, out[1].Equal(other))

	assert.Nil(t, uniqueVertexSets(nil))
}
