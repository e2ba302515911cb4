package timing

import (
	"slices"
	"strings"
)

// Candidate is one measured configuration considered for a problem size.
type Candidate struct {
	Table   string
	Mode    Mode
	NoIO    bool
	Key     Key
	Seconds float64
}

// FastestBySize ranks every configuration of the given tables per problem
// size and keeps the n fastest. Ties go to the lower degree, then to the
// table name, so the output is stable.
func FastestBySize(tables []*Table, n int) map[int][]Candidate {
	bySize := make(map[int][]Candidate)
	for _, t := range tables {
		for _, e := range t.Entries() {
			bySize[e.Key.Size] = append(bySize[e.Key.Size], Candidate{
				Table:   t.Name(),
				Mode:    t.Mode(),
				NoIO:    t.NoIO(),
				Key:     e.Key,
				Seconds: e.Seconds,
			})
		}
	}

	for size, cands := range bySize {
		slices.SortFunc(cands, func(a, b Candidate) int {
			if a.Seconds != b.Seconds {
				if a.Seconds < b.Seconds {
					return -1
				}
				return 1
			}
			if a.Key.Degree != b.Key.Degree {
				return a.Key.Degree - b.Key.Degree
			}
			return strings.Compare(a.Table, b.Table)
		})
		if n > 0 && len(cands) > n {
			cands = cands[:n]
		}
		bySize[size] = cands
	}
	return bySize
}
