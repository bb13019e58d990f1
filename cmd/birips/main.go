// Command birips builds the bigraded Rips persistence module of a point
// cloud and prints a per-bigrade summary.
//
//	birips -input points.csv -p 0.5
//	BIRIPS_DEMO=circle birips -log-level debug
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/birips/bimodule"
	"github.com/katalvlaran/birips/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "birips:", err)
		stop()
		os.Exit(1)
	}
}

// run is main without process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: zapcore.AddSync(stderr),
	})
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	defer logger.Sync() //nolint:errcheck // best effort on exit

	cloud, err := LoadCloud(cfg)
	if err != nil {
		return err
	}
	logger.Info("cloud loaded",
		zap.String("input", cfg.Input),
		zap.String("demo", cfg.Demo),
		zap.Int("points", cloud.Len()),
		zap.Int("dim", cloud.Dim()),
	)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := []bimodule.Option{
		bimodule.WithContext(ctx),
		bimodule.WithWorkers(workers),
		bimodule.WithTolerance(cfg.Tolerance),
		bimodule.WithLogger(logger),
	}
	var bar *pb.ProgressBar
	if cfg.Progress {
		bar = pb.New(cloud.Len() + 1)
		bar.SetWriter(stderr)
		bar.Start()
		opts = append(opts, bimodule.WithProgress(func(done, total int) {
			bar.SetTotal(int64(total))
			bar.SetCurrent(int64(done))
		}))
	}

	m, err := bimodule.Build(cloud, cfg.Radius, opts...)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		logger.Error("build failed", zap.Error(err))
		return err
	}

	return printSummary(stdout, runID, m)
}
