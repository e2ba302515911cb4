package charts

import (
	"fmt"

	"github.com/ciricc/go-lifebench/internal/model/series"
	"github.com/ciricc/go-lifebench/internal/render"
	"github.com/ciricc/go-lifebench/internal/timing"
)

// Build resolves every series of def against the catalog and composes the
// chart. The first series that cannot be built aborts this chart only.
func Build(c *timing.Catalog, def Definition) (*render.Chart, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	ss := make([]series.Series, 0, len(def.Series))
	for i, spec := range def.Series {
		s, err := buildSeries(c, spec)
		if err != nil {
			return nil, fmt.Errorf("chart %s series %d (%s): %w", def.Name, i, spec.label(), err)
		}
		ss = append(ss, s)
	}

	title := def.Title
	if title == "" {
		title = def.Name
	}
	return render.Compose(title, def.Axes(), ss...)
}

func buildSeries(c *timing.Catalog, spec SeriesSpec) (series.Series, error) {
	t, err := c.Table(spec.Table)
	if err != nil {
		return series.Series{}, err
	}
	if spec.Baseline != "" {
		base, err := c.Table(spec.Baseline)
		if err != nil {
			return series.Series{}, err
		}
		if t, err = timing.Speedup(base, t); err != nil {
			return series.Series{}, err
		}
	}

	if spec.Group > 0 {
		return render.RenderGroupedSeries(t, spec.Group, spec.label())
	}
	return render.RenderSeries(t, spec.label())
}
