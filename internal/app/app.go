package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"

	"github.com/ciricc/go-lifebench/internal/charts"
	"github.com/ciricc/go-lifebench/internal/config"
	"github.com/ciricc/go-lifebench/internal/monitor"
	"github.com/ciricc/go-lifebench/internal/render"
	"github.com/ciricc/go-lifebench/internal/timing"
)

var (
	ErrDuplicateDestination = errors.New("two charts write the same file")
	ErrRenderPanic          = errors.New("renderer panicked")
)

type Application struct {
	Config   config.Config
	Catalog  *timing.Catalog
	Exporter render.Exporter
	Viewer   *render.Viewer
	Monitor  monitor.LoadMonitor
	log      *slog.Logger
}

type Opt func(a *Application)

func WithLogger(log *slog.Logger) Opt {
	return func(a *Application) { a.log = log }
}

// WithCatalog replaces the measured tables, mostly for tests.
func WithCatalog(c *timing.Catalog) Opt {
	return func(a *Application) { a.Catalog = c }
}

func New(cfg config.Config, opts ...Opt) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Application{Config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		lvl, err := cfg.SlogLevel()
		if err != nil {
			return nil, err
		}
		a.log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: lvl,
		}))
	}

	if a.Catalog == nil {
		catalog, err := timing.Builtin()
		if err != nil {
			return nil, fmt.Errorf("load timing tables: %w", err)
		}
		a.Catalog = catalog
	}

	switch cfg.Render.Backend {
	case config.BackendGoChart:
		dpi := float64(cfg.Output.DPI)
		a.Exporter = render.NewGoChartExporter(
			int(cfg.Output.WidthInches*dpi),
			int(cfg.Output.HeightInches*dpi),
		)
	default:
		a.Exporter = render.NewPlotExporter(
			vg.Length(cfg.Output.WidthInches)*vg.Inch,
			vg.Length(cfg.Output.HeightInches)*vg.Inch,
		)
	}

	a.Monitor = monitor.NewSemaphoreLoadMonitor(int64(cfg.Render.Parallelism))

	if cfg.Viewer.Enabled {
		a.Viewer = render.NewViewer(cfg.Viewer.Command, a.log, cfg.Viewer.Args...)
	}

	return a, nil
}

// Result is the outcome of one chart.
type Result struct {
	Chart   string
	Path    string
	Elapsed time.Duration
	Err     error
}

// Run renders the named charts, or every configured chart when names is
// empty. Charts are independent: a failing chart is logged and reported
// while the others still get written. The returned error joins all chart
// failures.
func (a *Application) Run(ctx context.Context, names ...string) ([]Result, error) {
	defs, err := charts.Select(a.Config.ChartSet(), names)
	if err != nil {
		return nil, err
	}

	dests := make(map[string]string, len(defs))
	for _, def := range defs {
		dest := a.destination(def)
		if other, ok := dests[dest]; ok {
			return nil, fmt.Errorf("%s and %s -> %s: %w", other, def.Name, dest, ErrDuplicateDestination)
		}
		dests[dest] = def.Name
	}

	a.log.InfoContext(ctx, "Rendering charts",
		"count", len(defs),
		"backend", a.Config.Render.Backend,
		"dir", a.Config.Output.Dir,
	)

	// Errors stay in results; a failing chart must not cancel the others.
	results := make([]Result, len(defs))
	var g errgroup.Group
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			if err := a.Monitor.Acquire(ctx); err != nil {
				results[i] = Result{Chart: def.Name, Path: a.destination(def), Err: err}
				return nil
			}
			results[i] = a.renderOne(ctx, def)
			a.Monitor.Release(results[i].Err)
			a.log.DebugContext(ctx, "Render progress", "metrics", a.Monitor.GetMetrics())
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("chart %s: %w", r.Chart, r.Err))
		}
	}
	a.log.InfoContext(ctx, "Charts done", "written", len(results)-len(errs), "failed", len(errs))
	return results, errors.Join(errs...)
}

func (a *Application) destination(def charts.Definition) string {
	return filepath.Join(a.Config.Output.Dir, def.FileName(a.Config.Output.Format))
}

func (a *Application) renderOne(ctx context.Context, def charts.Definition) (res Result) {
	log := a.log.With("chart", def.Name)
	start := time.Now()
	res = Result{Chart: def.Name, Path: a.destination(def)}

	// A panicking backend fails this chart only.
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Renderer panicked", "panic", r)
			res.Err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()

	ch, err := charts.Build(a.Catalog, def)
	if err != nil {
		log.ErrorContext(ctx, "Failed to build chart", "error", err)
		res.Err = err
		return res
	}

	if err := a.Exporter.Export(ctx, ch, res.Path); err != nil {
		log.ErrorContext(ctx, "Failed to export chart", "path", res.Path, "error", err)
		res.Err = err
		return res
	}
	res.Elapsed = time.Since(start)
	log.InfoContext(ctx, "Chart written", "path", res.Path, "series", len(ch.Series), "elapsed", res.Elapsed)

	if a.Viewer != nil {
		if err := a.Viewer.Show(ctx, res.Path); err != nil {
			log.WarnContext(ctx, "Viewer failed", "error", err)
		}
	}
	return res
}
