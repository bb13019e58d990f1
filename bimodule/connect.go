package bimodule

import (
	"math"

	"github.com/katalvlaran/birips/pointcloud"
	"github.com/katalvlaran/birips/prim_kruskal"
	"github.com/katalvlaran/birips/rips"
)

// connectivityRadius runs Kruskal over the complete distance graph of s and
// returns the largest tree edge.
func connectivityRadius(s pointcloud.Cloud, tol float64) (float64, error) {
	if len(s) < 2 {
		return 0, nil
	}
	edges, err := rips.Skeleton(s, math.Inf(1), tol)
	if err != nil {
		return 0, err
	}
	graph, err := rips.Graph(len(s), edges)
	if err != nil {
		return 0, err
	}
	mst, _, err := prim_kruskal.Kruskal(graph)
	if err != nil {
		return 0, err
	}

	return prim_kruskal.Bottleneck(mst), nil
}
