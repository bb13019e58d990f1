package homology

import (
	"math"

	"github.com/katalvlaran/birips/rips"
)

// config holds extraction knobs. Defaults:
//   - tol = rips.DefaultTolerance
type config struct {
	tol float64
}

// Option customizes extraction.
type Option func(*config)

// WithTolerance sets the filtration grouping tolerance (0 = exact values).
// Panics on a negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("homology: WithTolerance(tol<0 or non-finite)")
	}
	return func(c *config) { c.tol = tol }
}

func newConfig(opts ...Option) config {
	cfg := config{tol: rips.DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
