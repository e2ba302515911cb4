package series

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptySeries = errors.New("series has no points")
	ErrUnsorted    = errors.New("series points are not strictly ascending in x")
	ErrNotFinite   = errors.New("series point is not finite")
)

// Point is one (x, y) sample of a series. For timing charts X is the
// problem size and Y is elapsed seconds or a ratio.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered sequence of points with a legend label.
type Series struct {
	Label  string
	Points []Point
}

func NewSeries(label string, points []Point) *Series {
	return &Series{
		Label:  label,
		Points: points,
	}
}

func (s Series) Len() int {
	return len(s.Points)
}

// XY lets a Series be handed straight to plotting code that expects an
// indexed (x, y) source.
func (s Series) XY(i int) (float64, float64) {
	return s.Points[i].X, s.Points[i].Y
}

func (s Series) Xs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}

func (s Series) Ys() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

func (s Series) Validate() error {
	if len(s.Points) == 0 {
		return fmt.Errorf("%q: %w", s.Label, ErrEmptySeries)
	}
	for i, p := range s.Points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%q point %d: %w", s.Label, i, ErrNotFinite)
		}
		if i > 0 && s.Points[i-1].X >= p.X {
			return fmt.Errorf("%q point %d: %w", s.Label, i, ErrUnsorted)
		}
	}
	return nil
}

// Positive reports whether every coordinate on the selected axes is > 0,
// which a log axis needs.
func (s Series) Positive(x, y bool) bool {
	for _, p := range s.Points {
		if (x && p.X <= 0) || (y && p.Y <= 0) {
			return false
		}
	}
	return true
}
