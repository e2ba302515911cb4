package timing

import "fmt"

// Speedup divides baseline time by parallel time for every key of parallel.
// A scalar baseline is matched on size alone, so serial timings can be
// compared against every degree of a grouped table. Any key without a
// baseline value fails the whole computation with ErrMissingKey.
func Speedup(baseline, parallel *Table) (*Table, error) {
	if parallel.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", parallel.Name(), ErrEmptyTable)
	}
	if baseline.Grouped() && !parallel.Grouped() {
		return nil, fmt.Errorf("grouped baseline %s against scalar %s: %w", baseline.Name(), parallel.Name(), ErrMixedKeys)
	}

	entries := make([]Entry, 0, parallel.Len())
	for _, e := range parallel.Entries() {
		bk := e.Key
		if !baseline.Grouped() {
			bk = Scalar(e.Key.Size)
		}
		base, ok := baseline.Lookup(bk)
		if !ok {
			return nil, fmt.Errorf("%s has no value for %s: %w", baseline.Name(), bk, ErrMissingKey)
		}
		entries = append(entries, Entry{Key: e.Key, Seconds: base / e.Seconds})
	}

	opts := []TableOpt{WithMode(parallel.Mode())}
	if parallel.NoIO() {
		opts = append(opts, WithoutIO())
	}
	return NewTable(fmt.Sprintf("%s/%s", baseline.Name(), parallel.Name()), entries, opts...)
}

// Efficiency divides each grouped speedup by its degree.
func Efficiency(speedup *Table) (*Table, error) {
	if !speedup.Grouped() {
		return nil, fmt.Errorf("%s: %w", speedup.Name(), ErrScalarTable)
	}
	entries := make([]Entry, 0, speedup.Len())
	for _, e := range speedup.Entries() {
		entries = append(entries, Entry{Key: e.Key, Seconds: e.Seconds / float64(e.Key.Degree)})
	}
	opts := []TableOpt{WithMode(speedup.Mode())}
	if speedup.NoIO() {
		opts = append(opts, WithoutIO())
	}
	return NewTable(speedup.Name()+" efficiency", entries, opts...)
}
