package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		wantErr error
	}{
		{name: "ok", points: []Point{{64, 0.1}, {128, 0.4}}},
		{name: "empty", points: nil, wantErr: ErrEmptySeries},
		{name: "unsorted", points: []Point{{128, 0.4}, {64, 0.1}}, wantErr: ErrUnsorted},
		{name: "duplicate x", points: []Point{{64, 0.1}, {64, 0.2}}, wantErr: ErrUnsorted},
		{name: "nan", points: []Point{{64, math.NaN()}}, wantErr: ErrNotFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSeries("s", tt.points).Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccessors(t *testing.T) {
	s := NewSeries("serial", []Point{{64, 0.5}, {128, 2}})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{64, 128}, s.Xs())
	assert.Equal(t, []float64{0.5, 2}, s.Ys())
	x, y := s.XY(1)
	assert.Equal(t, 128.0, x)
	assert.Equal(t, 2.0, y)
	assert.True(t, s.Positive(true, true))

	zeroX := NewSeries("zero", []Point{{0, 1}})
	assert.False(t, zeroX.Positive(true, true))
	assert.False(t, zeroX.Positive(true, false))
	assert.True(t, zeroX.Positive(false, true))
}
