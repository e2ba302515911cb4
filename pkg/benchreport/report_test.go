package benchreport

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciricc/go-lifebench/internal/timing"
)

func builtinReport(t *testing.T) Report {
	t.Helper()
	c, err := timing.Builtin()
	require.NoError(t, err)
	r, err := New(c, DefaultPairs, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func find[T any](t *testing.T, items []T, match func(T) bool) T {
	t.Helper()
	for _, it := range items {
		if match(it) {
			return it
		}
	}
	require.FailNow(t, "item not found")
	var zero T
	return zero
}

func TestNewBuiltin(t *testing.T) {
	r := builtinReport(t)

	assert.Equal(t, Version, r.Version)
	assert.Equal(t, "2024-05-01T12:00:00Z", r.TimestampRFC3339)
	assert.Equal(t, timing.StandardSizes, r.Sizes)
	assert.Len(t, r.Tables, 8)
	assert.Len(t, r.Speedups, len(DefaultPairs))

	omp := find(t, r.Speedups, func(s SpeedupReport) bool { return s.Table == timing.OMPNoIO })
	m := find(t, omp.Speedup, func(m Measurement) bool { return m.Degree == 4 && m.Size == 1024 })
	assert.InDelta(t, 36.67, m.Value, 0.02)
	e := find(t, omp.Efficiency, func(m Measurement) bool { return m.Degree == 4 && m.Size == 1024 })
	assert.InDelta(t, m.Value/4, e.Value, 1e-9)

	cuda := find(t, r.Speedups, func(s SpeedupReport) bool { return s.Table == timing.CUDA })
	assert.Empty(t, cuda.Efficiency)

	require.Len(t, r.Fastest, len(timing.StandardSizes))
	last := r.Fastest[len(r.Fastest)-1]
	assert.Equal(t, 2048, last.Size)
	assert.Equal(t, timing.CUDANoIO, last.Table)
}

func TestNewUnknownPair(t *testing.T) {
	c, err := timing.Builtin()
	require.NoError(t, err)
	_, err = New(c, []Pair{{Baseline: "gpu", Table: timing.CUDA}}, time.Now())
	require.ErrorIs(t, err, timing.ErrUnknownTable)

	_, err = New(c, []Pair{{Baseline: timing.MPINoIO, Table: timing.OMPNoIO}}, time.Now())
	require.ErrorIs(t, err, timing.ErrMissingKey)
}

func TestWriteFileAndJSON(t *testing.T) {
	r := builtinReport(t)
	path := filepath.Join(t.TempDir(), "out", "report.json")
	require.NoError(t, WriteFile(path, r))
	require.NoError(t, WriteFile(path, r))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))
	assert.Equal(t, buf.String(), string(b))

	var back Report
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, r.Fastest, back.Fastest)
}
