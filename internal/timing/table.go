package timing

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Mode is the execution variant a table was measured with.
type Mode string

const (
	ModeSerial Mode = "serial"
	ModeOpenMP Mode = "openmp"
	ModeCUDA   Mode = "cuda"
	ModeMPI    Mode = "mpi"
)

// Key identifies one benchmark run. Scalar keys leave Degree at zero;
// grouped keys carry the thread or process count in Degree.
type Key struct {
	Degree int
	Size   int
}

func Scalar(size int) Key {
	return Key{Size: size}
}

func Pair(degree, size int) Key {
	return Key{Degree: degree, Size: size}
}

func (k Key) Grouped() bool {
	return k.Degree > 0
}

func (k Key) String() string {
	if !k.Grouped() {
		return strconv.Itoa(k.Size)
	}
	return fmt.Sprintf("(%d, %d)", k.Degree, k.Size)
}

func compareKeys(a, b Key) int {
	if a.Degree != b.Degree {
		return a.Degree - b.Degree
	}
	return a.Size - b.Size
}

type Entry struct {
	Key     Key
	Seconds float64
}

// Table maps configuration keys to elapsed wall-clock seconds. A Table is
// immutable once built; accessors hand out copies.
type Table struct {
	name    string
	mode    Mode
	noIO    bool
	grouped bool
	values  map[Key]float64
}

type TableOpt func(t *Table)

func WithMode(mode Mode) TableOpt {
	return func(t *Table) { t.mode = mode }
}

// WithoutIO marks the table as measured with frame output disabled.
func WithoutIO() TableOpt {
	return func(t *Table) { t.noIO = true }
}

// NewTable builds a table from entries. Empty tables are allowed so that
// rendering can report them; everything else that breaks the key or value
// invariants is rejected here.
func NewTable(name string, entries []Entry, opts ...TableOpt) (*Table, error) {
	t := &Table{
		name:   name,
		values: make(map[Key]float64, len(entries)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for i, e := range entries {
		if e.Key.Size <= 0 || e.Key.Degree < 0 {
			return nil, fmt.Errorf("%s: key %s: %w", name, e.Key, ErrInvalidKey)
		}
		if i == 0 {
			t.grouped = e.Key.Grouped()
		} else if t.grouped != e.Key.Grouped() {
			return nil, fmt.Errorf("%s: key %s: %w", name, e.Key, ErrMixedKeys)
		}
		if e.Seconds <= 0 || math.IsNaN(e.Seconds) || math.IsInf(e.Seconds, 0) {
			return nil, fmt.Errorf("%s: key %s has %v: %w", name, e.Key, e.Seconds, ErrNonPositive)
		}
		if _, ok := t.values[e.Key]; ok {
			return nil, fmt.Errorf("%s: key %s: %w", name, e.Key, ErrDuplicateKey)
		}
		t.values[e.Key] = e.Seconds
	}

	return t, nil
}

func NewScalarTable(name string, values map[int]float64, opts ...TableOpt) (*Table, error) {
	entries := make([]Entry, 0, len(values))
	for size, sec := range values {
		entries = append(entries, Entry{Key: Scalar(size), Seconds: sec})
	}
	return NewTable(name, entries, opts...)
}

func NewGroupedTable(name string, values map[Key]float64, opts ...TableOpt) (*Table, error) {
	entries := make([]Entry, 0, len(values))
	for k, sec := range values {
		if !k.Grouped() {
			return nil, fmt.Errorf("%s: key %s: %w", name, k, ErrInvalidKey)
		}
		entries = append(entries, Entry{Key: k, Seconds: sec})
	}
	return NewTable(name, entries, opts...)
}

func (t *Table) Name() string   { return t.name }
func (t *Table) Mode() Mode     { return t.mode }
func (t *Table) NoIO() bool     { return t.noIO }
func (t *Table) Grouped() bool  { return t.grouped }
func (t *Table) Len() int       { return len(t.values) }
func (t *Table) IsEmpty() bool  { return len(t.values) == 0 }
func (t *Table) String() string { return t.name }

func (t *Table) Lookup(k Key) (float64, bool) {
	v, ok := t.values[k]
	return v, ok
}

// Keys returns every key ordered by degree, then size.
func (t *Table) Keys() []Key {
	keys := lo.Keys(t.values)
	slices.SortFunc(keys, compareKeys)
	return keys
}

// Entries returns the table rows in Keys order.
func (t *Table) Entries() []Entry {
	return lo.Map(t.Keys(), func(k Key, _ int) Entry {
		return Entry{Key: k, Seconds: t.values[k]}
	})
}

// Degrees returns the distinct parallelism degrees, ascending. Scalar
// tables have none.
func (t *Table) Degrees() []int {
	if !t.grouped {
		return nil
	}
	degrees := lo.Uniq(lo.Map(lo.Keys(t.values), func(k Key, _ int) int { return k.Degree }))
	slices.Sort(degrees)
	return degrees
}

func (t *Table) Sizes() []int {
	sizes := lo.Uniq(lo.Map(lo.Keys(t.values), func(k Key, _ int) int { return k.Size }))
	slices.Sort(sizes)
	return sizes
}

// Group returns the rows whose degree equals degree, ordered by size.
func (t *Table) Group(degree int) ([]Entry, error) {
	if !t.grouped {
		if t.IsEmpty() {
			return nil, fmt.Errorf("%s: %w", t.name, ErrEmptyTable)
		}
		return nil, fmt.Errorf("%s: %w", t.name, ErrScalarTable)
	}
	rows := lo.Filter(t.Entries(), func(e Entry, _ int) bool {
		return e.Key.Degree == degree
	})
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has no rows for degree %d: %w", t.name, degree, ErrNoData)
	}
	return rows, nil
}
