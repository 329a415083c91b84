package math

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ComputationErr is returned when the silhouette cannot be defined for the given input.
var ComputationErr = errors.New("silhouette computation failed")

// Distances computes the euclidean distance between all pairs of rows.
func Distances(data mat.Matrix) *mat.SymDense {
	n, _ := data.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, data)
	}

	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, floats.Distance(rows[i], rows[j], 2))
		}
	}
	return d
}

// Samples computes the silhouette coefficient of every row of data.
// The result is aligned with the rows.
func Samples[L constraints.Ordered](data mat.Matrix, labels []L) ([]float64, error) {
	n, _ := data.Dims()
	if n != len(labels) {
		return nil, fmt.Errorf("found %d labels for %d samples: %w", len(labels), n, ComputationErr)
	}

	for i := 0; i < n; i++ {
		if !finite(mat.Row(nil, i, data)) {
			return nil, fmt.Errorf("sample %d has non-finite values: %w", i, ComputationErr)
		}
	}

	distinct, index := Encode(labels)
	k := len(distinct)
	if k < 2 || k > n-1 {
		return nil, fmt.Errorf("number of labels is %d, valid values are 2 to %d (inclusive): %w", k, n-1, ComputationErr)
	}

	return samples(Distances(data), index, k), nil
}

// Score computes the mean silhouette coefficient over all rows.
func Score[L constraints.Ordered](data mat.Matrix, labels []L) (float64, error) {
	s, err := Samples(data, labels)
	if err != nil {
		return 0, err
	}
	return stat.Mean(s, nil), nil
}

func finite(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func samples(d mat.Symmetric, index []int, k int) []float64 {
	n := len(index)

	sizes := make([]int, k)
	for _, c := range index {
		sizes[c]++
	}

	scores := make([]float64, n)
	sums := make([]float64, k)
	for i := 0; i < n; i++ {
		for c := range sums {
			sums[c] = 0
		}
		for j := 0; j < n; j++ {
			sums[index[j]] += d.At(i, j)
		}

		own := index[i]
		// singleton clusters score 0
		if sizes[own] < 2 {
			continue
		}

		a := sums[own] / float64(sizes[own]-1)
		b := math.MaxFloat64
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if m := sums[c] / float64(sizes[c]); m < b {
				b = m
			}
		}

		if den := math.Max(a, b); den > 0 {
			scores[i] = (b - a) / den
		}
	}
	return scores
}
