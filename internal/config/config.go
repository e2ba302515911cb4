package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ciricc/go-lifebench/internal/charts"
	"github.com/ciricc/go-lifebench/internal/render"
)

const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Output struct {
		Dir          string  `yaml:"dir"`
		Format       string  `yaml:"format"`
		WidthInches  float64 `yaml:"width_inches"`
		HeightInches float64 `yaml:"height_inches"`
		// DPI converts inches to pixels for the gochart backend.
		DPI int `yaml:"dpi"`
	} `yaml:"output"`

	Render struct {
		Backend     string `yaml:"backend"`
		Parallelism int    `yaml:"parallelism"`
	} `yaml:"render"`

	Viewer struct {
		Enabled bool     `yaml:"enabled"`
		Command string   `yaml:"command"`
		Args    []string `yaml:"args"`
	} `yaml:"viewer"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	// Charts replaces the built-in chart set when non-empty.
	Charts []charts.Definition `yaml:"charts"`
}

func Default() Config {
	var c Config
	c.Output.Dir = "charts"
	c.Output.Format = "png"
	c.Output.WidthInches = 8
	c.Output.HeightInches = 6
	c.Output.DPI = 96
	c.Render.Backend = BackendGonum
	c.Render.Parallelism = 1
	c.Viewer.Command = "xdg-open"
	c.Log.Level = "info"
	return c
}

// Load reads a YAML config on top of Default. A missing file is not an
// error: the defaults are returned as is.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	var exporter render.Exporter
	switch c.Render.Backend {
	case BackendGonum:
		exporter = &render.PlotExporter{}
	case BackendGoChart:
		exporter = &render.GoChartExporter{}
	default:
		errs = append(errs, fmt.Errorf("render.backend %q", c.Render.Backend))
	}
	if c.Render.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("render.parallelism %d < 1", c.Render.Parallelism))
	}
	if c.Output.Format == "" || strings.HasPrefix(c.Output.Format, ".") {
		errs = append(errs, fmt.Errorf("output.format %q", c.Output.Format))
	} else if exporter != nil && !exporter.Supports(c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q with backend %s: %w", c.Output.Format, c.Render.Backend, render.ErrUnsupportedFormat))
	}
	if c.Output.WidthInches <= 0 || c.Output.HeightInches <= 0 {
		errs = append(errs, fmt.Errorf("output size %gx%g", c.Output.WidthInches, c.Output.HeightInches))
	}
	if c.Render.Backend == BackendGoChart && c.Output.DPI <= 0 {
		errs = append(errs, fmt.Errorf("output.dpi %d", c.Output.DPI))
	}
	if c.Viewer.Enabled && c.Viewer.Command == "" {
		errs = append(errs, errors.New("viewer.command is empty"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	for _, d := range c.Charts {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return lvl, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// ChartSet returns the configured charts, or the built-in set.
func (c Config) ChartSet() []charts.Definition {
	if len(c.Charts) > 0 {
		return c.Charts
	}
	return charts.Builtin()
}
