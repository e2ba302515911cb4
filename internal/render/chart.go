package render

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ciricc/go-lifebench/internal/model/series"
)

var (
	ErrNoSeries          = errors.New("chart needs at least one series")
	ErrNonPositiveLog    = errors.New("log axis needs positive values")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

type Axes struct {
	XLabel string
	YLabel string
	LogX   bool
	LogY   bool
}

// DefaultAxes is log-log: sizes span ~2 orders of magnitude and times ~4.
func DefaultAxes() Axes {
	return Axes{
		XLabel: "Problem size (grid edge)",
		YLabel: "Elapsed time (s)",
		LogX:   true,
		LogY:   true,
	}
}

// Chart is an overlay of series on one coordinate system.
type Chart struct {
	Title string
	Axes
	Series []series.Series
}

// Compose overlays ss on shared axes. Legend entries follow input order.
func Compose(title string, axes Axes, ss ...series.Series) (*Chart, error) {
	if len(ss) == 0 {
		return nil, fmt.Errorf("%q: %w", title, ErrNoSeries)
	}

	c := &Chart{
		Title:  title,
		Axes:   axes,
		Series: make([]series.Series, len(ss)),
	}
	for i, s := range ss {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%q: %w", title, err)
		}
		if !s.Positive(axes.LogX, axes.LogY) {
			return nil, fmt.Errorf("%q series %q: %w", title, s.Label, ErrNonPositiveLog)
		}
		c.Series[i] = series.Series{Label: s.Label, Points: slices.Clone(s.Points)}
	}
	return c, nil
}

func (c *Chart) Legend() []string {
	labels := make([]string, len(c.Series))
	for i, s := range c.Series {
		labels[i] = s.Label
	}
	return labels
}

// XValues returns the distinct x coordinates of all series, ascending.
func (c *Chart) XValues() []float64 {
	var xs []float64
	for _, s := range c.Series {
		xs = append(xs, s.Xs()...)
	}
	slices.Sort(xs)
	return slices.Compact(xs)
}

// YRange returns the smallest and largest y over all series.
func (c *Chart) YRange() (lo, hi float64) {
	first := true
	for _, s := range c.Series {
		for _, p := range s.Points {
			if first || p.Y < lo {
				lo = p.Y
			}
			if first || p.Y > hi {
				hi = p.Y
			}
			first = false
		}
	}
	return lo, hi
}
