package math

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Encode returns the distinct labels in ascending order
// and, for every row, the position of its label in that order.
func Encode[L constraints.Ordered](labels []L) ([]L, []int) {
	set := make(map[L]struct{})
	for _, l := range labels {
		set[l] = struct{}{}
	}

	distinct := maps.Keys(set)
	slices.Sort(distinct)

	rank := make(map[L]int, len(distinct))
	for i, l := range distinct {
		rank[l] = i
	}

	index := make([]int, len(labels))
	for i, l := range labels {
		index[i] = rank[l]
	}
	return distinct, index
}
