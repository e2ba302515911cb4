package charts

import (
	"errors"
	"fmt"

	"github.com/ciricc/go-lifebench/internal/render"
)

var (
	ErrInvalidDefinition = errors.New("invalid chart definition")
	ErrUnknownChart      = errors.New("unknown chart")
)

const (
	ScaleLog    = "log"
	ScaleLinear = "linear"
)

// SeriesSpec names the table a series comes from. Group selects a degree of
// a grouped table; Baseline turns the series into Baseline/Table speedups.
type SeriesSpec struct {
	Table    string `yaml:"table"`
	Group    int    `yaml:"group"`
	Baseline string `yaml:"baseline"`
	Label    string `yaml:"label"`
}

func (s SeriesSpec) label() string {
	if s.Label != "" {
		return s.Label
	}
	name := s.Table
	if s.Baseline != "" {
		name = s.Baseline + "/" + s.Table
	}
	if s.Group > 0 {
		return fmt.Sprintf("%s (%d)", name, s.Group)
	}
	return name
}

// Definition describes one chart and the file it is written to. File is a
// basename; the exporter format decides the extension.
type Definition struct {
	Name   string       `yaml:"name"`
	Title  string       `yaml:"title"`
	File   string       `yaml:"file"`
	XLabel string       `yaml:"x_label"`
	YLabel string       `yaml:"y_label"`
	XScale string       `yaml:"x_scale"`
	YScale string       `yaml:"y_scale"`
	Series []SeriesSpec `yaml:"series"`
}

func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("chart without name: %w", ErrInvalidDefinition)
	}
	if len(d.Series) == 0 {
		return fmt.Errorf("chart %s has no series: %w", d.Name, ErrInvalidDefinition)
	}
	for _, scale := range []string{d.XScale, d.YScale} {
		if scale != "" && scale != ScaleLog && scale != ScaleLinear {
			return fmt.Errorf("chart %s: scale %q: %w", d.Name, scale, ErrInvalidDefinition)
		}
	}
	for i, s := range d.Series {
		if s.Table == "" {
			return fmt.Errorf("chart %s series %d has no table: %w", d.Name, i, ErrInvalidDefinition)
		}
		if s.Group < 0 {
			return fmt.Errorf("chart %s series %d: negative group: %w", d.Name, i, ErrInvalidDefinition)
		}
	}
	return nil
}

func (d Definition) FileName(format string) string {
	base := d.File
	if base == "" {
		base = d.Name
	}
	return base + "." + format
}

// Axes fills unset labels and scales from render.DefaultAxes.
func (d Definition) Axes() render.Axes {
	axes := render.DefaultAxes()
	if d.XLabel != "" {
		axes.XLabel = d.XLabel
	}
	if d.YLabel != "" {
		axes.YLabel = d.YLabel
	}
	axes.LogX = d.XScale != ScaleLinear
	axes.LogY = d.YScale != ScaleLinear
	return axes
}

// Select returns the definitions named in names, in the given order. An
// empty names list selects everything.
func Select(defs []Definition, names []string) ([]Definition, error) {
	if len(names) == 0 {
		return defs, nil
	}
	byName := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	out := make([]Definition, 0, len(names))
	for _, n := range names {
		d, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%q: %w", n, ErrUnknownChart)
		}
		out = append(out, d)
	}
	return out, nil
}
