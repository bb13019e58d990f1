package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/birips/pointcloud"
)

func TestReadCloud(t *testing.T) {
	in := `# two hexagon corners and a header
x,y
1, 0
0.5,0.8660254037844386
-1,0
`
	c, err := ReadCloud(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, pointcloud.Cloud{{1, 0}, {0.5, 0.8660254037844386}, {-1, 0}}, c)
}

func TestReadCloud_NoHeader3D(t *testing.T) {
	c, err := ReadCloud(strings.NewReader("1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, 2, c.Len())
}

func TestReadCloud_Errors(t *testing.T) {
	_, err := ReadCloud(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ReadCloud(strings.NewReader("x,y\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ReadCloud(strings.NewReader("1,2\n3,oops\n"))
	assert.Error(t, err)

	// ragged rows are rejected by the csv reader.
	_, err = ReadCloud(strings.NewReader("1,2\n3,4,5\n"))
	assert.Error(t, err)
}

func TestLoadCloud(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0\n3,4\n"), 0o600))

	cfg := DefaultConfig()
	cfg.Input = path
	c, err := LoadCloud(cfg)
	require.NoError(t, err)
	assert.Equal(t, pointcloud.Cloud{{0, 0}, {3, 4}}, c)

	cfg.Input = filepath.Join(t.TempDir(), "missing.csv")
	_, err = LoadCloud(cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemoClouds(t *testing.T) {
	sizes := map[string]int{DemoHexagons: 12, DemoCircle: 24, DemoUniform: 30}
	for name, n := range sizes {
		c, err := demoCloud(name, 1)
		require.NoError(t, err, name)
		assert.Len(t, c, n, name)
		assert.NoError(t, pointcloud.Validate(c), name)
	}

	a, _ := demoCloud(DemoUniform, 7)
	b, _ := demoCloud(DemoUniform, 7)
	assert.Equal(t, a, b, "seeded demo is deterministic")

	_, err := demoCloud("torus", 1)
	assert.ErrorIs(t, err, ErrInvalidDemo)
}
