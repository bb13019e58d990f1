package homology

import (
	"fmt"
	"math"

	"github.com/katalvlaran/birips/bfs"
	"github.com/katalvlaran/birips/dfs"
	"github.com/katalvlaran/birips/pointcloud"
	"github.com/katalvlaran/birips/rips"
)

// Extract returns the generators of the Rips graph of c at radius r, in
// canonical order (layer ascending, then DFS discovery order).
//
// Edge cases:
//   - empty cloud, a single point, or no edge under r ⇒ empty list.
//
// Errors:
//   - pointcloud validation sentinels.
func Extract(c pointcloud.Cloud, r float64, opts ...Option) ([]Generator, error) {
	cfg := newConfig(opts...)
	edges, err := rips.Skeleton(c, r, cfg.tol)
	if err != nil {
		return nil, fmt.Errorf("homology: Extract: %w", err)
	}

	var out []Generator
	for _, layer := range rips.Layers(edges, cfg.tol) {
		gens, err := layerGenerators(c, layer)
		if err != nil {
			return nil, fmt.Errorf("homology: Extract: layer %v: %w", layer.Value, err)
		}
		out = append(out, gens...)
	}

	return uniqueVertexSets(out), nil
}

// uniqueVertexSets drops every generator whose vertex set already occurred
// earlier in gs. Lower layers come first, so the cycle that appears at the
// smallest filtration value is kept. The filter is prefix-stable: applying
// it to a prefix of gs yields a prefix of its result.
func uniqueVertexSets(gs []Generator) []Generator {
	if len(gs) < 2 {
		return gs
	}
	seen := make(map[string]struct{}, len(gs))
	out := gs[:0:0]
	for _, g := range gs {
		k := g.VertexSetKey()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, g)
	}

	return out
}

// layerGenerators runs the DFS cycle basis on one layer and translates the
// index walks into coordinate generators.
func layerGenerators(c pointcloud.Cloud, layer rips.Layer) ([]Generator, error) {
	if layer.Len() == 0 {
		return nil, nil
	}
	g, err := layer.Graph()
	if err != nil {
		return nil, err
	}
	walks, err := dfs.CycleBasis(g)
	if err != nil {
		return nil, err
	}

	out := make([]Generator, 0, len(walks))
	for _, walk := range walks {
		pairs := dfs.WalkEdges(walk)
		gen := make(Generator, len(pairs))
		for i, p := range pairs {
			gen[i] = Edge{c[p[0]], c[p[1]]}
		}
		out = append(out, gen)
	}

	return out, nil
}

// Extractor answers Extract(c, r) for many radii of one cloud.
//
// Layers do not depend on r: a layer's graph only holds edges of its own
// filtration value. So the full filtration is layered once, each layer's
// generators are computed once, and At(r) concatenates the layers present
// at r. An Extractor is immutable after NewExtractor and safe for
// concurrent readers.
type Extractor struct {
	cloud  pointcloud.Cloud
	tol    float64
	layers []rips.Layer
	gens   [][]Generator // per layer
	ranks  []int         // cycle-space dimension per layer
}

// NewExtractor layers the complete filtration of c and extracts every
// layer's generators.
func NewExtractor(c pointcloud.Cloud, opts ...Option) (*Extractor, error) {
	cfg := newConfig(opts...)
	cloud := c.Clone()
	edges, err := rips.Skeleton(cloud, math.Inf(1), cfg.tol)
	if err != nil {
		return nil, fmt.Errorf("homology: NewExtractor: %w", err)
	}

	x := &Extractor{cloud: cloud, tol: cfg.tol, layers: rips.Layers(edges, cfg.tol)}
	x.gens = make([][]Generator, len(x.layers))
	x.ranks = make([]int, len(x.layers))
	for i, layer := range x.layers {
		if x.gens[i], err = layerGenerators(cloud, layer); err != nil {
			return nil, fmt.Errorf("homology: NewExtractor: layer %v: %w", layer.Value, err)
		}
		if x.ranks[i], err = layerCycleRank(layer); err != nil {
			return nil, fmt.Errorf("homology: NewExtractor: layer %v: %w", layer.Value, err)
		}
	}

	return x, nil
}

// At returns the generators at radius r; equal to Extract(cloud, r).
//
// A layer whose values straddle r + tol is cut the same way a direct
// skeleton at r would cut it, and its basis is computed on the fly.
func (x *Extractor) At(r float64) ([]Generator, error) {
	limit := r + x.tol
	var out []Generator
	for i, layer := range x.layers {
		if layer.Upper <= limit {
			out = append(out, x.gens[i]...)
			continue
		}
		if layer.Value <= limit {
			gens, err := layerGenerators(x.cloud, layer.Prefix(limit))
			if err != nil {
				return nil, fmt.Errorf("homology: Extractor.At(%v): %w", r, err)
			}
			out = append(out, gens...)
		}
		break
	}

	return uniqueVertexSets(out), nil
}

// CycleRank returns the summed cycle-space dimension |E| − |V| + c of the
// layers present at radius r. It bounds len(At(r)) from above; the gap is
// what the DFS basis loses to short walks and vertex-set deduplication.
func (x *Extractor) CycleRank(r float64) (int, error) {
	limit := r + x.tol
	total := 0
	for i, layer := range x.layers {
		if layer.Upper <= limit {
			total += x.ranks[i]
			continue
		}
		if layer.Value <= limit {
			rank, err := layerCycleRank(layer.Prefix(limit))
			if err != nil {
				return 0, fmt.Errorf("homology: Extractor.CycleRank(%v): %w", r, err)
			}
			total += rank
		}
		break
	}

	return total, nil
}

// layerCycleRank is the cycle-space dimension of one layer's graph.
func layerCycleRank(layer rips.Layer) (int, error) {
	if layer.Len() == 0 {
		return 0, nil
	}
	g, err := layer.Graph()
	if err != nil {
		return 0, err
	}

	return bfs.CycleRank(g)
}

// Layers returns the number of filtration layers.
func (x *Extractor) Layers() int { return len(x.layers) }

// LayerValue returns the filtration value of layer i.
func (x *Extractor) LayerValue(i int) float64 { return x.layers[i].Value }

// Total returns the number of generators at the saturated radius.
func (x *Extractor) Total() int {
	n := 0
	for _, g := range x.gens {
		n += len(g)
	}

	return n
}
