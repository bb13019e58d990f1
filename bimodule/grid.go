package bimodule

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/birips/density"
	"github.com/katalvlaran/birips/homology"
	"github.com/katalvlaran/birips/internal/metrics"
	"github.com/katalvlaran/birips/pointcloud"
)

// Grid is the total table gen(a, r) for a ∈ [0,N], r ∈ [0,RMax].
// A Grid is immutable after BuildGrid and safe for concurrent readers.
type Grid struct {
	n, rMax int
	filter  *density.Filter
	logger  *zap.Logger

	// indexed [a] and [a][r]
	subsets []pointcloud.Cloud
	connect []float64
	gens    [][][]homology.Generator
}

// BuildGrid computes gen(a, r) for every bigrade of c.
//
// Implementation:
//   - Stage 1: validate c and p; count densities once (density.Filter).
//   - Stage 2: RMax = ⌈diameter(c) − tol⌉, the least integer radius whose
//     Rips graph is complete.
//   - Stage 3: per threshold a, on a bounded errgroup: S(a), then one
//     homology.Extractor answering every radius. An empty S(a) leaves the
//     whole row empty.
//
// Errors:
//   - pointcloud.ErrInvalidParameter, pointcloud.ErrInconsistentGeometry,
//     pointcloud.ErrNonFinite from validation.
//   - ctx.Err() when the WithContext context is done.
//
// Complexity:
//   - Time O(N·(|S|² log|S| + RMax·|E|)) over all thresholds; Space O(N·RMax·G).
func BuildGrid(c pointcloud.Cloud, p float64, opts ...Option) (*Grid, error) {
	cfg := newConfig(opts...)
	start := time.Now()

	g, err := buildGrid(c, p, cfg)
	switch {
	case err == nil:
		metrics.GridBuildsTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		metrics.GridBuildsTotal.WithLabelValues("canceled").Inc()
	default:
		metrics.GridBuildsTotal.WithLabelValues("error").Inc()
	}
	if err != nil {
		return nil, fmt.Errorf("bimodule: BuildGrid: %w", err)
	}

	elapsed := time.Since(start)
	metrics.GridBuildDurationSeconds.Observe(elapsed.Seconds())
	cfg.logger.Info("grid built",
		zap.Int("n", g.n),
		zap.Int("r_max", g.rMax),
		zap.Int("generators", g.total()),
		zap.Duration("elapsed", elapsed),
	)

	return g, nil
}

func buildGrid(c pointcloud.Cloud, p float64, cfg config) (*Grid, error) {
	filter, err := density.NewFilter(c, p)
	if err != nil {
		return nil, err
	}
	diameter, err := pointcloud.Diameter(c)
	if err != nil {
		return nil, err
	}

	n := len(c)
	g := &Grid{
		n:       n,
		rMax:    saturationRadius(diameter, cfg.tol),
		filter:  filter,
		subsets: make([]pointcloud.Cloud, n+1),
		connect: make([]float64, n+1),
		gens:    make([][][]homology.Generator, n+1),
		logger:  cfg.logger,
	}

	var (
		mu   sync.Mutex
		done int
	)
	eg, ctx := errgroup.WithContext(cfg.ctx)
	eg.SetLimit(cfg.workers)
	for a := 0; a <= n; a++ {
		a := a
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.buildRow(ctx, a, cfg); err != nil {
				return err
			}
			if cfg.progress != nil {
				mu.Lock()
				done++
				cfg.progress(done, n+1)
				mu.Unlock()
			}

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return g, nil
}

// buildRow fills subsets[a] and gens[a]. Rows are disjoint, so concurrent
// calls for distinct a need no locking.
func (g *Grid) buildRow(ctx context.Context, a int, cfg config) error {
	s := g.filter.Subset(a)
	g.subsets[a] = s
	row := make([][]homology.Generator, g.rMax+1)
	g.gens[a] = row
	metrics.SubsetSize.Observe(float64(len(s)))
	if len(s) == 0 {
		return nil
	}

	x, err := homology.NewExtractor(s, homology.WithTolerance(cfg.tol))
	if err != nil {
		return fmt.Errorf("a=%d: %w", a, err)
	}
	if g.connect[a], err = connectivityRadius(s, cfg.tol); err != nil {
		return fmt.Errorf("a=%d: %w", a, err)
	}
	placed := 0
	for r := 0; r <= g.rMax; r++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if row[r], err = x.At(float64(r)); err != nil {
			return fmt.Errorf("a=%d r=%d: %w", a, r, err)
		}
		placed += len(row[r])
	}
	metrics.GeneratorsTotal.Add(float64(placed))
	if ce := cfg.logger.Check(zap.DebugLevel, "threshold built"); ce != nil {
		rank, err := x.CycleRank(float64(g.rMax))
		if err != nil {
			return fmt.Errorf("a=%d: %w", a, err)
		}
		ce.Write(
			zap.Int("a", a),
			zap.Int("subset", len(s)),
			zap.Int("layers", x.Layers()),
			zap.Int("generators", placed),
			zap.Int("saturated_generators", len(row[g.rMax])),
			zap.Int("cycle_rank", rank),
			zap.Float64("connectivity_radius", g.connect[a]),
		)
	}

	return nil
}

// saturationRadius returns the least integer r ≥ 0 with diameter ≤ r + tol.
func saturationRadius(diameter, tol float64) int {
	return max(int(math.Ceil(diameter-tol)), 0)
}

// N returns the cloud size; thresholds run over [0,N].
func (g *Grid) N() int { return g.n }

// RMax returns the largest radius; radii run over [0,RMax].
func (g *Grid) RMax() int { return g.rMax }

// Radius returns the density neighbourhood radius p.
func (g *Grid) Radius() float64 { return g.filter.Radius() }

// Filter returns the density filter shared by every threshold.
func (g *Grid) Filter() *density.Filter { return g.filter }

// Contains reports whether (a, r) lies in [0,N]×[0,RMax].
func (g *Grid) Contains(a, r int) bool {
	return a >= 0 && a <= g.n && r >= 0 && r <= g.rMax
}

// Generators returns gen(a, r). The slice is shared; do not modify it.
func (g *Grid) Generators(a, r int) ([]homology.Generator, error) {
	if !g.Contains(a, r) {
		return nil, fmt.Errorf("Grid.Generators(%d,%d): %w", a, r, ErrOutOfGrid)
	}

	return g.gens[a][r], nil
}

// Subset returns S(a) as used for row a.
func (g *Grid) Subset(a int) (pointcloud.Cloud, error) {
	if a < 0 || a > g.n {
		return nil, fmt.Errorf("Grid.Subset(%d): %w", a, ErrOutOfGrid)
	}

	return g.subsets[a], nil
}

// ConnectivityRadius returns the least radius at which the Rips graph of
// S(a) is connected: the bottleneck of its minimum spanning tree. It is 0
// when |S(a)| ≤ 1.
func (g *Grid) ConnectivityRadius(a int) (float64, error) {
	if a < 0 || a > g.n {
		return 0, fmt.Errorf("Grid.ConnectivityRadius(%d): %w", a, ErrOutOfGrid)
	}

	return g.connect[a], nil
}

// at extends gen past the grid edge: gen(N+1, r) = ∅ and
// gen(a, RMax+1) = gen(a, RMax).
func (g *Grid) at(a, r int) []homology.Generator {
	if a > g.n {
		return nil
	}
	if r > g.rMax {
		r = g.rMax
	}

	return g.gens[a][r]
}

func (g *Grid) total() int {
	n := 0
	for _, row := range g.gens {
		for _, gens := range row {
			n += len(gens)
		}
	}

	return n
}
