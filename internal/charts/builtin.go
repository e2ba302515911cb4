package charts

import (
	"fmt"

	"github.com/ciricc/go-lifebench/internal/timing"
)

const speedupLabel = "Speedup (serial / parallel)"

func degrees(table string, label string, ds ...int) []SeriesSpec {
	specs := make([]SeriesSpec, len(ds))
	for i, d := range ds {
		specs[i] = SeriesSpec{Table: table, Group: d, Label: fmt.Sprintf("%d %s", d, label)}
	}
	return specs
}

func speedups(baseline, table, label string, ds ...int) []SeriesSpec {
	specs := degrees(table, label, ds...)
	for i := range specs {
		specs[i].Baseline = baseline
	}
	return specs
}

// Builtin returns the default chart set over the measured tables.
func Builtin() []Definition {
	return []Definition{
		{
			Name:  "times_io",
			Title: "Game of Life execution time (with I/O)",
			Series: []SeriesSpec{
				{Table: timing.Serial, Label: "Serial"},
				{Table: timing.CUDA, Label: "CUDA"},
				{Table: timing.OMP, Group: 8, Label: "OpenMP (8 threads)"},
				{Table: timing.MPI, Group: 4, Label: "MPI (4 processes)"},
			},
		},
		{
			Name:  "times_no_io",
			Title: "Game of Life execution time (no I/O)",
			Series: []SeriesSpec{
				{Table: timing.SerialNoIO, Label: "Serial"},
				{Table: timing.CUDANoIO, Label: "CUDA"},
				{Table: timing.OMPNoIO, Group: 8, Label: "OpenMP (8 threads)"},
				{Table: timing.MPINoIO, Group: 4, Label: "MPI (4 processes)"},
			},
		},
		{
			Name:   "omp_threads",
			Title:  "OpenMP execution time by thread count (with I/O)",
			Series: append([]SeriesSpec{{Table: timing.Serial, Label: "Serial"}}, degrees(timing.OMP, "threads", 1, 2, 4, 8, 16)...),
		},
		{
			Name:   "omp_threads_no_io",
			Title:  "OpenMP execution time by thread count (no I/O)",
			Series: append([]SeriesSpec{{Table: timing.SerialNoIO, Label: "Serial"}}, degrees(timing.OMPNoIO, "threads", 1, 2, 4, 8, 16)...),
		},
		{
			Name:   "mpi_procs",
			Title:  "MPI execution time by process count (with I/O)",
			Series: append([]SeriesSpec{{Table: timing.Serial, Label: "Serial"}}, degrees(timing.MPI, "processes", 2, 4, 8)...),
		},
		{
			Name:   "mpi_procs_no_io",
			Title:  "MPI execution time by process count (no I/O)",
			Series: append([]SeriesSpec{{Table: timing.SerialNoIO, Label: "Serial"}}, degrees(timing.MPINoIO, "processes", 1, 2, 4, 8)...),
		},
		{
			Name:   "speedup_omp_no_io",
			Title:  "OpenMP speedup over serial (no I/O)",
			YLabel: speedupLabel,
			Series: speedups(timing.SerialNoIO, timing.OMPNoIO, "threads", 1, 2, 4, 8, 16),
		},
		{
			Name:   "speedup_mpi_no_io",
			Title:  "MPI speedup over serial (no I/O)",
			YLabel: speedupLabel,
			Series: speedups(timing.SerialNoIO, timing.MPINoIO, "processes", 1, 2, 4, 8),
		},
		{
			Name:   "speedup_cuda",
			Title:  "CUDA speedup over serial",
			YLabel: speedupLabel,
			Series: []SeriesSpec{
				{Table: timing.CUDA, Baseline: timing.Serial, Label: "CUDA (with I/O)"},
				{Table: timing.CUDANoIO, Baseline: timing.SerialNoIO, Label: "CUDA (no I/O)"},
			},
		},
		{
			Name:  "io_overhead_cuda",
			Title: "CUDA execution time with and without I/O",
			Series: []SeriesSpec{
				{Table: timing.CUDA, Label: "with I/O"},
				{Table: timing.CUDANoIO, Label: "no I/O"},
			},
		},
	}
}
