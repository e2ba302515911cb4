package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ciricc/go-lifebench/internal/app"
	"github.com/ciricc/go-lifebench/internal/config"
	"github.com/ciricc/go-lifebench/internal/styles"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to YAML config (defaults apply if missing)")
		outDir     = flag.String("out", "", "output directory, overrides output.dir")
		backend    = flag.String("backend", "", "rendering backend: gonum|gochart")
		format     = flag.String("format", "", "image format, e.g. png, svg, pdf")
		only       = flag.String("only", "", "comma separated chart names to render")
		view       = flag.Bool("view", false, "open every written chart with viewer.command")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *backend != "" {
		cfg.Render.Backend = *backend
	}
	if *format != "" {
		cfg.Output.Format = strings.TrimPrefix(*format, ".")
	}
	if *view {
		cfg.Viewer.Enabled = true
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	var names []string
	if *only != "" {
		for _, n := range strings.Split(*only, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := application.Run(ctx, names...)
	if results == nil && err != nil {
		stop()
		log.Fatalf("run: %v", err)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := styles.Sprintf(styles.Success, "ok")
		if r.Err != nil {
			status = styles.Sprintf(styles.Error, "failed")
		}
		rows = append(rows, []string{r.Chart, r.Path, status})
	}
	_, _ = os.Stdout.WriteString(styles.Table([]string{"chart", "file", "status"}, rows) + "\n")

	if err != nil {
		styles.Fprintf(os.Stderr, styles.Error, "%v", err)
		stop()
		os.Exit(1)
	}
}
