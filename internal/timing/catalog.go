package timing

import (
	"errors"
	"fmt"
	"slices"
)

// Names of the built-in tables.
const (
	Serial     = "serial"
	OMP        = "omp"
	CUDA       = "cuda"
	MPI        = "mpi"
	SerialNoIO = "serial_no_io"
	OMPNoIO    = "omp_no_io"
	CUDANoIO   = "cuda_no_io"
	MPINoIO    = "mpi_no_io"
)

// StandardSizes are the grid sizes every measured table covers.
var StandardSizes = []int{64, 128, 256, 512, 1024, 2048}

// Catalog is a read-only, name-indexed set of tables.
type Catalog struct {
	tables map[string]*Table
	order  []string
}

func NewCatalog(tables ...*Table) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		if _, ok := c.tables[t.Name()]; ok {
			return nil, fmt.Errorf("table %q registered twice", t.Name())
		}
		c.tables[t.Name()] = t
		c.order = append(c.order, t.Name())
	}
	return c, nil
}

func (c *Catalog) Table(name string) (*Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTable)
	}
	return t, nil
}

// Names returns table names in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

func (c *Catalog) Tables() []*Table {
	out := make([]*Table, len(c.order))
	for i, name := range c.order {
		out[i] = c.tables[name]
	}
	return out
}

// CheckSizes verifies that every table, and every degree group of a grouped
// table, covers exactly the given problem sizes.
func (c *Catalog) CheckSizes(sizes []int) error {
	var errs []error
	for _, t := range c.Tables() {
		if !t.Grouped() {
			if !slices.Equal(t.Sizes(), sizes) {
				errs = append(errs, fmt.Errorf("%s has sizes %v: %w", t.Name(), t.Sizes(), ErrSizeSet))
			}
			continue
		}
		for _, d := range t.Degrees() {
			rows, err := t.Group(d)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			got := make([]int, len(rows))
			for i, r := range rows {
				got[i] = r.Key.Size
			}
			if !slices.Equal(got, sizes) {
				errs = append(errs, fmt.Errorf("%s degree %d has sizes %v: %w", t.Name(), d, got, ErrSizeSet))
			}
		}
	}
	return errors.Join(errs...)
}

// Builtin returns the catalog of measured tables.
func Builtin() (*Catalog, error) {
	type spec struct {
		name    string
		scalar  map[int]float64
		grouped map[Key]float64
		opts    []TableOpt
	}
	specs := []spec{
		{name: Serial, scalar: serialSeconds, opts: []TableOpt{WithMode(ModeSerial)}},
		{name: OMP, grouped: ompSeconds, opts: []TableOpt{WithMode(ModeOpenMP)}},
		{name: CUDA, scalar: cudaSeconds, opts: []TableOpt{WithMode(ModeCUDA)}},
		{name: MPI, grouped: mpiSeconds, opts: []TableOpt{WithMode(ModeMPI)}},
		{name: SerialNoIO, scalar: serialNoIOSeconds, opts: []TableOpt{WithMode(ModeSerial), WithoutIO()}},
		{name: OMPNoIO, grouped: ompNoIOSeconds, opts: []TableOpt{WithMode(ModeOpenMP), WithoutIO()}},
		{name: CUDANoIO, scalar: cudaNoIOSeconds, opts: []TableOpt{WithMode(ModeCUDA), WithoutIO()}},
		{name: MPINoIO, grouped: mpiNoIOSeconds, opts: []TableOpt{WithMode(ModeMPI), WithoutIO()}},
	}

	tables := make([]*Table, 0, len(specs))
	for _, s := range specs {
		var (
			t   *Table
			err error
		)
		if s.scalar != nil {
			t, err = NewScalarTable(s.name, s.scalar, s.opts...)
		} else {
			t, err = NewGroupedTable(s.name, s.grouped, s.opts...)
		}
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	c, err := NewCatalog(tables...)
	if err != nil {
		return nil, err
	}
	if err := c.CheckSizes(StandardSizes); err != nil {
		return nil, err
	}
	return c, nil
}
