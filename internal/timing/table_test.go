package timing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "duplicate key",
			entries: []Entry{{Key: Pair(2, 64), Seconds: 1}, {Key: Pair(2, 64), Seconds: 2}},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "zero seconds",
			entries: []Entry{{Key: Scalar(64), Seconds: 0}},
			wantErr: ErrNonPositive,
		},
		{
			name:    "negative seconds",
			entries: []Entry{{Key: Scalar(64), Seconds: -1}},
			wantErr: ErrNonPositive,
		},
		{
			name:    "infinite seconds",
			entries: []Entry{{Key: Scalar(64), Seconds: math.Inf(1)}},
			wantErr: ErrNonPositive,
		},
		{
			name:    "mixed keys",
			entries: []Entry{{Key: Scalar(64), Seconds: 1}, {Key: Pair(2, 128), Seconds: 1}},
			wantErr: ErrMixedKeys,
		},
		{
			name:    "zero size",
			entries: []Entry{{Key: Scalar(0), Seconds: 1}},
			wantErr: ErrInvalidKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable("t", tt.entries)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewGroupedTableRejectsScalarKey(t *testing.T) {
	_, err := NewGroupedTable("t", map[Key]float64{Scalar(64): 1})
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestTableAccessors(t *testing.T) {
	tbl, err := NewGroupedTable("omp", map[Key]float64{
		Pair(4, 128): 0.2,
		Pair(2, 64):  0.1,
		Pair(4, 64):  0.05,
		Pair(2, 128): 0.4,
	}, WithMode(ModeOpenMP), WithoutIO())
	require.NoError(t, err)

	assert.Equal(t, "omp", tbl.Name())
	assert.Equal(t, ModeOpenMP, tbl.Mode())
	assert.True(t, tbl.NoIO())
	assert.True(t, tbl.Grouped())
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, []Key{Pair(2, 64), Pair(2, 128), Pair(4, 64), Pair(4, 128)}, tbl.Keys())
	assert.Equal(t, []int{2, 4}, tbl.Degrees())
	assert.Equal(t, []int{64, 128}, tbl.Sizes())

	v, ok := tbl.Lookup(Pair(4, 128))
	require.True(t, ok)
	assert.Equal(t, 0.2, v)
	_, ok = tbl.Lookup(Pair(8, 128))
	assert.False(t, ok)
}

func TestGroup(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	omp, err := c.Table(OMP)
	require.NoError(t, err)

	rows, err := omp.Group(8)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	wantSizes := []int{64, 128, 256, 512, 1024, 2048}
	wantSecs := []float64{0.005289, 0.015901, 0.062283, 0.225722, 0.653508, 2.362771}
	for i, r := range rows {
		assert.Equal(t, 8, r.Key.Degree)
		assert.Equal(t, wantSizes[i], r.Key.Size)
		assert.Equal(t, wantSecs[i], r.Seconds)
	}

	_, err = omp.Group(32)
	require.ErrorIs(t, err, ErrNoData)

	serial, err := c.Table(Serial)
	require.NoError(t, err)
	_, err = serial.Group(1)
	require.ErrorIs(t, err, ErrScalarTable)

	empty, err := NewTable("empty", nil)
	require.NoError(t, err)
	_, err = empty.Group(1)
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "64", Scalar(64).String())
	assert.Equal(t, "(4, 1024)", Pair(4, 1024).String())
}
