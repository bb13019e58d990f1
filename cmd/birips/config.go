package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the environment prefix: BIRIPS_RADIUS, BIRIPS_INPUT, ...
const envPrefix = "BIRIPS"

// Demo cloud names.
const (
	DemoHexagons = "hexagons"
	DemoCircle   = "circle"
	DemoUniform  = "uniform"
)

// Config validation errors
var (
	ErrInvalidRadius    = errors.New("radius must be finite and >= 0")
	ErrInvalidWorkers   = errors.New("workers must be >= 0")
	ErrInvalidTolerance = errors.New("tolerance must be finite and >= 0")
	ErrInvalidDemo      = errors.New("demo must be hexagons, circle, or uniform")
	ErrInvalidTimeout   = errors.New("timeout must be >= 0")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'text'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
)

// Config is the driver configuration. Environment variables are read
// first; command-line flags override them.
type Config struct {
	Input     string        `envconfig:"INPUT"`
	Radius    float64       `envconfig:"RADIUS" default:"0.5"`
	Workers   int           `envconfig:"WORKERS" default:"0"`
	Tolerance float64       `envconfig:"TOLERANCE" default:"1e-9"`
	Demo      string        `envconfig:"DEMO" default:"hexagons"`
	Seed      int64         `envconfig:"SEED" default:"1"`
	Progress  bool          `envconfig:"PROGRESS" default:"true"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"0s"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Radius:    0.5,
		Tolerance: 1e-9,
		Demo:      DemoHexagons,
		Seed:      1,
		Progress:  true,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if math.IsNaN(cfg.Radius) || math.IsInf(cfg.Radius, 0) || cfg.Radius < 0 {
		return ErrInvalidRadius
	}
	if cfg.Workers < 0 {
		return ErrInvalidWorkers
	}
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return ErrInvalidTolerance
	}
	if cfg.Input == "" && cfg.Demo != DemoHexagons && cfg.Demo != DemoCircle && cfg.Demo != DemoUniform {
		return ErrInvalidDemo
	}
	if cfg.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}

// LoadConfig reads the environment, then applies args as flag overrides,
// then validates.
func LoadConfig(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	fs := flag.NewFlagSet("birips", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Input, "input", cfg.Input, "CSV point cloud, one point per row (empty: demo cloud)")
	fs.Float64Var(&cfg.Radius, "p", cfg.Radius, "density neighbourhood radius")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent density thresholds (0: GOMAXPROCS)")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "filtration grouping tolerance")
	fs.StringVar(&cfg.Demo, "demo", cfg.Demo, "demo cloud: hexagons, circle, or uniform")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "demo cloud random seed")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "show a progress bar")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the build after this long (0: no limit)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json or text")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
