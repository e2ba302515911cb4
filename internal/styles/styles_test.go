package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciricc/go-lifebench/internal/timing"
)

func TestCandidateRows(t *testing.T) {
	bySize := map[int][]timing.Candidate{
		2048: {
			{Table: timing.CUDANoIO, Mode: timing.ModeCUDA, NoIO: true, Key: timing.Scalar(2048), Seconds: 0.545301},
		},
		64: {
			{Table: timing.OMPNoIO, Mode: timing.ModeOpenMP, NoIO: true, Key: timing.Pair(8, 64), Seconds: 0.01},
			{Table: timing.Serial, Mode: timing.ModeSerial, Key: timing.Scalar(64), Seconds: 0.5},
		},
	}

	rows := CandidateRows(bySize)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"64", "1", "omp_no_io", "openmp", "8", "no", "0.010000"}, rows[0])
	assert.Equal(t, []string{"64", "2", "serial", "serial", "-", "yes", "0.500000"}, rows[1])
	assert.Equal(t, "2048", rows[2][0])
	assert.Len(t, rows[0], len(CandidateHeaders))
}

func TestTableContainsCells(t *testing.T) {
	out := Table([]string{"chart", "status"}, [][]string{{"times_io", "ok"}})
	assert.Contains(t, out, "chart")
	assert.Contains(t, out, "times_io")
	assert.Contains(t, out, "ok")
}

func TestFprintf(t *testing.T) {
	var buf bytes.Buffer
	Fprintf(&buf, Error, "failed %d charts", 2)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "failed 2 charts")
}
