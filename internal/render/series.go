package render

import (
	"fmt"

	"github.com/ciricc/go-lifebench/internal/model/series"
	"github.com/ciricc/go-lifebench/internal/timing"
)

// RenderSeries turns a size-keyed table into a series ordered by ascending
// problem size.
func RenderSeries(t *timing.Table, label string) (series.Series, error) {
	if t.IsEmpty() {
		return series.Series{}, fmt.Errorf("%s: %w", t.Name(), timing.ErrEmptyTable)
	}
	if t.Grouped() {
		return series.Series{}, fmt.Errorf("%s needs a group: %w", t.Name(), timing.ErrGroupedTable)
	}
	return toSeries(label, t.Entries())
}

// RenderGroupedSeries keeps the rows of a (degree, size) table whose degree
// equals group and renders them like RenderSeries. A group with no rows is
// an error, never an empty series.
func RenderGroupedSeries(t *timing.Table, group int, label string) (series.Series, error) {
	rows, err := t.Group(group)
	if err != nil {
		return series.Series{}, err
	}
	return toSeries(label, rows)
}

// entries come from Table.Entries or Table.Group and are already ordered
// by size within a degree.
func toSeries(label string, entries []timing.Entry) (series.Series, error) {
	points := make([]series.Point, len(entries))
	for i, e := range entries {
		points[i] = series.Point{X: float64(e.Key.Size), Y: e.Seconds}
	}
	s := series.NewSeries(label, points)
	if err := s.Validate(); err != nil {
		return series.Series{}, err
	}
	return *s, nil
}
