package bimodule

import (
	"context"
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/birips/rips"
)

// ProgressFunc receives the number of density thresholds finished so far
// and the total. Calls are serialized and done is strictly increasing.
type ProgressFunc func(done, total int)

// config holds build knobs. Defaults:
//   - ctx      = context.Background()
//   - workers  = runtime.GOMAXPROCS(0)
//   - tol      = rips.DefaultTolerance
//   - logger   = zap.NewNop()
//   - progress = nil
type config struct {
	ctx      context.Context
	workers  int
	tol      float64
	logger   *zap.Logger
	progress ProgressFunc
}

// Option customizes BuildGrid and Build.
type Option func(*config)

// WithContext makes the build abort with ctx.Err() once ctx is done.
// Panics on a nil ctx.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("bimodule: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithWorkers bounds the number of density thresholds built concurrently.
// WithWorkers(1) builds sequentially. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("bimodule: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithTolerance sets the filtration grouping tolerance passed to homology.
// Panics on a negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("bimodule: WithTolerance(tol<0 or non-finite)")
	}
	return func(c *config) { c.tol = tol }
}

// WithLogger sets the build logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) { c.progress = fn }
}

func newConfig(opts ...Option) config {
	cfg := config{
		ctx:     context.Background(),
		workers: runtime.GOMAXPROCS(0),
		tol:     rips.DefaultTolerance,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
