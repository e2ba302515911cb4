package timing

import "errors"

var (
	ErrEmptyTable   = errors.New("timing table is empty")
	ErrNoData       = errors.New("no data to plot")
	ErrMissingKey   = errors.New("configuration key missing from table")
	ErrDuplicateKey = errors.New("duplicate configuration key")
	ErrNonPositive  = errors.New("timing value must be positive and finite")
	ErrInvalidKey   = errors.New("invalid configuration key")
	ErrMixedKeys    = errors.New("table mixes scalar and grouped keys")
	ErrUnknownTable = errors.New("unknown timing table")
	ErrGroupedTable = errors.New("table is keyed by (degree, size)")
	ErrScalarTable  = errors.New("table is keyed by size only")
	ErrSizeSet      = errors.New("table does not cover the standard problem sizes")
)
