package commands

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/partscope/partscope/internal/catalog"
	"github.com/partscope/partscope/internal/cliopt"
	"github.com/partscope/partscope/internal/cliutil"
	"github.com/partscope/partscope/internal/config"
	"github.com/partscope/partscope/internal/logging"
	"github.com/partscope/partscope/internal/metrics"
	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

// runtime carries what every catalog-reading command needs.
type runtime struct {
	g        cliopt.GlobalOptions
	cfg      *config.Config
	format   cliutil.OutputFormat
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Recorder
}

// setup loads configuration, applies global flag overrides and builds the logger.
// Errors are configuration errors and map to exit code 2.
func setup(g cliopt.GlobalOptions) (*runtime, error) {
	format, err := cliutil.ParseOutputFormat(g.Format)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, err
	}
	if g.Backend != "" {
		cfg.Catalog.Backend = g.Backend
	}
	if g.Path != "" {
		cfg.Catalog.Path = g.Path
	}
	if g.Table != "" {
		cfg.Catalog.Table = g.Table
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrConfig, "build logger", err)
	}
	reg := prometheus.NewRegistry()
	return &runtime{
		g:        g,
		cfg:      cfg,
		format:   format,
		logger:   logger,
		registry: reg,
		metrics:  metrics.New(reg),
	}, nil
}

func (rt *runtime) source(ctx context.Context) (storage.Source, error) {
	return catalog.Open(ctx, rt.cfg.Catalog, rt.logger)
}

func (rt *runtime) catalog(ctx context.Context) (*partscope.Catalog, error) {
	src, err := rt.source(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, src, rt.logger, rt.metrics)
}

// session loads the catalog and starts a session with the configured plot settings.
func (rt *runtime) session(ctx context.Context) (*partscope.Session, error) {
	c, err := rt.catalog(ctx)
	if err != nil {
		return nil, err
	}
	plot, err := rt.cfg.Plot.PlotConfig()
	if err != nil {
		return nil, err
	}
	return partscope.NewSession(c,
		partscope.WithLogger(rt.logger),
		partscope.WithRecorder(rt.metrics),
		partscope.WithPlotConfig(plot),
	), nil
}

// finish flushes the logger and dumps metrics when requested.
func (rt *runtime) finish() {
	if rt.g.Metrics {
		if err := metrics.WriteText(rt.g.Stderr, rt.registry); err != nil {
			fmt.Fprintln(rt.g.Stderr, err)
		}
	}
	_ = rt.logger.Sync()
}

func (rt *runtime) print(v any, pretty func()) int {
	done, err := cliutil.PrintStructured(rt.g.Stdout, rt.format, v)
	if err != nil {
		fmt.Fprintln(rt.g.Stderr, err)
		return 1
	}
	if !done {
		pretty()
	}
	return 0
}

// start is the common prologue: setup, or report a usage error.
func start(g cliopt.GlobalOptions) (*runtime, int) {
	rt, err := setup(g)
	if err != nil {
		fmt.Fprintln(g.Stderr, err)
		return nil, 2
	}
	return rt, 0
}
