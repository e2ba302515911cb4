package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinValuesArePositive(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, []string{Serial, OMP, CUDA, MPI, SerialNoIO, OMPNoIO, CUDANoIO, MPINoIO}, c.Names())
	for _, tbl := range c.Tables() {
		require.False(t, tbl.IsEmpty(), tbl.Name())
		for _, e := range tbl.Entries() {
			assert.Greater(t, e.Seconds, 0.0, "%s %s", tbl.Name(), e.Key)
		}
		assert.Equal(t, StandardSizes, tbl.Sizes(), tbl.Name())
	}
}

func TestBuiltinShapes(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mode    Mode
		noIO    bool
		degrees []int
	}{
		{Serial, ModeSerial, false, nil},
		{OMP, ModeOpenMP, false, []int{1, 2, 4, 8, 16}},
		{CUDA, ModeCUDA, false, nil},
		{MPI, ModeMPI, false, []int{2, 4, 8}},
		{SerialNoIO, ModeSerial, true, nil},
		{OMPNoIO, ModeOpenMP, true, []int{1, 2, 4, 8, 16}},
		{CUDANoIO, ModeCUDA, true, nil},
		{MPINoIO, ModeMPI, true, []int{1, 2, 4, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := c.Table(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, tbl.Mode())
			assert.Equal(t, tt.noIO, tbl.NoIO())
			assert.Equal(t, tt.degrees, tbl.Degrees())
		})
	}
}

func TestCUDAOutlierIsKept(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	cuda, err := c.Table(CUDA)
	require.NoError(t, err)

	at64, _ := cuda.Lookup(Scalar(64))
	at128, _ := cuda.Lookup(Scalar(128))
	at256, _ := cuda.Lookup(Scalar(256))
	assert.Greater(t, at64, at128)
	assert.Greater(t, at64, at256)
}

func TestCatalogUnknownTable(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	_, err = c.Table("opencl")
	require.ErrorIs(t, err, ErrUnknownTable)
}

func TestCatalogDuplicateName(t *testing.T) {
	a, err := NewScalarTable("a", map[int]float64{64: 1})
	require.NoError(t, err)
	_, err = NewCatalog(a, a)
	require.Error(t, err)
}

func TestCheckSizes(t *testing.T) {
	partial, err := NewGroupedTable("partial", map[Key]float64{
		Pair(2, 64):  1,
		Pair(2, 128): 1,
		Pair(4, 64):  1,
	})
	require.NoError(t, err)
	c, err := NewCatalog(partial)
	require.NoError(t, err)

	err = c.CheckSizes([]int{64, 128})
	require.ErrorIs(t, err, ErrSizeSet)
	assert.Contains(t, err.Error(), "degree 4")
}
