package render

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotExporter renders charts with gonum/plot. The output format follows
// the destination extension.
type PlotExporter struct {
	Width  vg.Length
	Height vg.Length
}

func NewPlotExporter(width, height vg.Length) *PlotExporter {
	return &PlotExporter{Width: width, Height: height}
}

var plotFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

func (e *PlotExporter) Export(ctx context.Context, c *Chart, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	format := formatOf(dest)
	if !e.Supports(format) {
		return fmt.Errorf("%s: %q: %w", dest, format, ErrUnsupportedFormat)
	}

	p, err := e.Plot(c)
	if err != nil {
		return err
	}
	w, err := p.WriterTo(e.Width, e.Height, format)
	if err != nil {
		return fmt.Errorf("render %q: %w", c.Title, err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return fmt.Errorf("render %q: %w", c.Title, err)
	}
	return writeFile(dest, buf.Bytes())
}

func (e *PlotExporter) Supports(format string) bool {
	return plotFormats[strings.ToLower(format)]
}

// Plot builds the gonum plot for c without writing it anywhere.
func (e *PlotExporter) Plot(c *Chart) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = c.Title
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	if c.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = sizeTicks(c.XValues())
	}
	if c.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	colors := seriesColors(len(c.Series))
	for i, s := range c.Series {
		line, points, err := plotter.NewLinePoints(s)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		points.Color = colors[i]
		points.Shape = plotutil.Shape(i)
		points.Radius = vg.Points(2.5)

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	if c.LogX {
		xs := c.XValues()
		p.X.Min, p.X.Max = logRange(xs[0], xs[len(xs)-1])
	}
	if c.LogY {
		p.Y.Min, p.Y.Max = logRange(c.YRange())
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	return p, nil
}

// sizeTicks labels every measured size so powers of two read as such on a
// log axis.
func sizeTicks(xs []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(xs))
	for i, x := range xs {
		ticks[i] = plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'g', -1, 64)}
	}
	return ticks
}

// logRange widens a single value by a factor of two each way. gonum pads a
// degenerate range by one, which can cross zero on a log axis.
func logRange(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo / 2, hi * 2
	}
	return lo, hi
}

func seriesColors(n int) []color.Color {
	if n >= 3 && n <= 8 {
		if pal, err := brewer.GetPalette(brewer.TypeQualitative, "Dark2", n); err == nil {
			return pal.Colors()
		}
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = plotutil.Color(i)
	}
	return colors
}

var _ Exporter = (*PlotExporter)(nil)
