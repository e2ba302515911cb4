package render

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// GoChartExporter renders charts with go-chart. go-chart has no log axis,
// so log axes are drawn by plotting log10 coordinates and labelling the
// ticks with the original values.
type GoChartExporter struct {
	Width  int
	Height int
}

func NewGoChartExporter(width, height int) *GoChartExporter {
	return &GoChartExporter{Width: width, Height: height}
}

func (e *GoChartExporter) Export(ctx context.Context, c *Chart, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format := formatOf(dest)
	if !e.Supports(format) {
		return fmt.Errorf("%s: %q: %w", dest, format, ErrUnsupportedFormat)
	}
	var provider chart.RendererProvider = chart.PNG
	if format == "svg" {
		provider = chart.SVG
	}

	ch := e.Chart(c)
	var buf bytes.Buffer
	if err := ch.Render(provider, &buf); err != nil {
		return fmt.Errorf("render %q: %w", c.Title, err)
	}
	return writeFile(dest, buf.Bytes())
}

// Supports reports whether format is png or svg, the two go-chart renderers.
func (e *GoChartExporter) Supports(format string) bool {
	switch strings.ToLower(format) {
	case "png", "svg":
		return true
	}
	return false
}

// Chart converts c into a go-chart definition.
func (e *GoChartExporter) Chart(c *Chart) chart.Chart {
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		col := chart.GetDefaultColor(i)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: scaleValues(s.Xs(), c.LogX),
			YValues: scaleValues(s.Ys(), c.LogY),
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    3,
			},
		})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      e.Width,
		Height:     e.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: c.XLabel},
		YAxis:      chart.YAxis{Name: c.YLabel},
		Series:     series,
	}

	if c.LogX {
		xs := c.XValues()
		if len(xs) == 1 {
			// go-chart takes the axis range from the ticks and rejects a zero span.
			xs = []float64{xs[0] / 2, xs[0], xs[0] * 2}
		}
		ticks := valueTicks(xs)
		ch.XAxis.Ticks = ticks
		ch.XAxis.Range = &chart.ContinuousRange{Min: ticks[0].Value, Max: ticks[len(ticks)-1].Value}
	}
	if c.LogY {
		ticks := decadeTicks(c.YRange())
		ch.YAxis.Ticks = ticks
		ch.YAxis.Range = &chart.ContinuousRange{Min: ticks[0].Value, Max: ticks[len(ticks)-1].Value}
	}

	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

func scaleValues(vs []float64, log bool) []float64 {
	if !log {
		return vs
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Log10(v)
	}
	return out
}

// valueTicks places one tick per value, in log10 space.
func valueTicks(vs []float64) []chart.Tick {
	ticks := make([]chart.Tick, len(vs))
	for i, v := range vs {
		ticks[i] = chart.Tick{Value: math.Log10(v), Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}

// decadeTicks covers [lo, hi] with powers of ten, in log10 space.
func decadeTicks(lo, hi float64) []chart.Tick {
	first := int(math.Floor(math.Log10(lo)))
	last := int(math.Ceil(math.Log10(hi)))
	if last == first {
		last++
	}
	ticks := make([]chart.Tick, 0, last-first+1)
	for d := first; d <= last; d++ {
		ticks = append(ticks, chart.Tick{
			Value: float64(d),
			Label: strconv.FormatFloat(math.Pow10(d), 'g', -1, 64),
		})
	}
	return ticks
}

var _ Exporter = (*GoChartExporter)(nil)
