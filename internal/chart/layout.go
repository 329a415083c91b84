package chart

import (
	"image/color"
	"sort"
)

// Gap is the vertical space left before, between and after the bands.
const Gap = 10

// Band is the strip of the silhouette plot holding one cluster.
type Band struct {
	Name   string
	Values []float64
	Lower  float64
	Upper  float64
	Color  color.Color
}

// Group is the set of per-sample scores of one cluster.
type Group struct {
	Name   string
	Values []float64
}

// Layout stacks one band per group, in the order given.
// Values are sorted ascending on a copy, the groups are not modified.
// It returns the bands and the upper bound of the vertical axis.
func Layout(groups []Group, cmap *Rainbow) ([]Band, float64) {
	bands := make([]Band, len(groups))
	n := 0
	lower := float64(Gap)
	for i, g := range groups {
		values := make([]float64, len(g.Values))
		copy(values, g.Values)
		sort.Float64s(values)

		upper := lower + float64(len(values))
		bands[i] = Band{
			Name:   g.Name,
			Values: values,
			Lower:  lower,
			Upper:  upper,
			Color:  cmap.Color(i, len(groups)),
		}
		n += len(values)
		lower = upper + Gap
	}
	return bands, float64(n + Gap*(len(groups)+1))
}
