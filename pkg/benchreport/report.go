package benchreport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/renameio/v2"
	"github.com/samber/lo"

	"github.com/ciricc/go-lifebench/internal/timing"
)

// Pair names a baseline table and the table it is compared against.
type Pair struct {
	Baseline string
	Table    string
}

// DefaultPairs compares every parallel variant with the serial run of the
// same I/O mode.
var DefaultPairs = []Pair{
	{Baseline: timing.Serial, Table: timing.OMP},
	{Baseline: timing.Serial, Table: timing.MPI},
	{Baseline: timing.Serial, Table: timing.CUDA},
	{Baseline: timing.SerialNoIO, Table: timing.OMPNoIO},
	{Baseline: timing.SerialNoIO, Table: timing.MPINoIO},
	{Baseline: timing.SerialNoIO, Table: timing.CUDANoIO},
}

func measurements(t *timing.Table) []Measurement {
	return lo.Map(t.Entries(), func(e timing.Entry, _ int) Measurement {
		return Measurement{Degree: e.Key.Degree, Size: e.Key.Size, Value: e.Seconds}
	})
}

// New collects every catalog table, the speedups of pairs and the fastest
// configuration per size.
func New(c *timing.Catalog, pairs []Pair, now time.Time) (Report, error) {
	r := Report{
		Version:          Version,
		TimestampRFC3339: now.UTC().Format(time.RFC3339),
	}

	tables := c.Tables()
	var sizes []int
	for _, t := range tables {
		r.Tables = append(r.Tables, TableReport{
			Name:         t.Name(),
			Mode:         string(t.Mode()),
			NoIO:         t.NoIO(),
			Grouped:      t.Grouped(),
			Measurements: measurements(t),
		})
		sizes = append(sizes, t.Sizes()...)
	}
	r.Sizes = lo.Uniq(sizes)
	slices.Sort(r.Sizes)

	for _, p := range pairs {
		sr, err := speedupReport(c, p)
		if err != nil {
			return Report{}, err
		}
		r.Speedups = append(r.Speedups, sr)
	}

	fastest := timing.FastestBySize(tables, 1)
	for _, size := range r.Sizes {
		best, ok := fastest[size]
		if !ok || len(best) == 0 {
			continue
		}
		r.Fastest = append(r.Fastest, FastestReport{
			Size:    size,
			Table:   best[0].Table,
			Mode:    string(best[0].Mode),
			Degree:  best[0].Key.Degree,
			Seconds: best[0].Seconds,
		})
	}
	return r, nil
}

func speedupReport(c *timing.Catalog, p Pair) (SpeedupReport, error) {
	base, err := c.Table(p.Baseline)
	if err != nil {
		return SpeedupReport{}, err
	}
	par, err := c.Table(p.Table)
	if err != nil {
		return SpeedupReport{}, err
	}
	sp, err := timing.Speedup(base, par)
	if err != nil {
		return SpeedupReport{}, fmt.Errorf("speedup %s/%s: %w", p.Baseline, p.Table, err)
	}

	sr := SpeedupReport{Baseline: p.Baseline, Table: p.Table, Speedup: measurements(sp)}
	if sp.Grouped() {
		eff, err := timing.Efficiency(sp)
		if err != nil {
			return SpeedupReport{}, err
		}
		sr.Efficiency = measurements(eff)
	}
	return sr, nil
}

func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteFile replaces path atomically with the indented report.
func WriteFile(path string, r Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return renameio.WriteFile(path, append(b, '\n'), 0o644)
}
