package policy

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Utilities maps states to their estimated utility
type Utilities[S comparable] map[S]float64

// NewUtilities returns a new, empty utility table with room for size
// states
func NewUtilities[S comparable](size int) Utilities[S] {
	return make(Utilities[S], size)
}

// Clone returns a copy of the utility table
func (u Utilities[S]) Clone() Utilities[S] {
	clone := make(Utilities[S], len(u))
	for s, v := range u {
		clone[s] = v
	}
	return clone
}

// MaxAbsDiff returns the largest absolute difference between the
// utilities of u and other over the states of u. States missing from
// other are compared against 0.
func (u Utilities[S]) MaxAbsDiff(other Utilities[S]) float64 {
	var diff float64
	for s, v := range u {
		if d := math.Abs(v - other[s]); d > diff {
			diff = d
		}
	}
	return diff
}

func (u Utilities[S]) String() string {
	lines := make([]string, 0, len(u))
	for s, v := range u {
		lines = append(lines, fmt.Sprintf("%v ---> %.4f", s, v))
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n")
}
