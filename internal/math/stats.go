package math

import "math"

// Stats is a streaming summary of a set of scores.
type Stats struct {
	count    int
	sum      float64
	mean     float64
	min, max float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.sum += v
	s.mean += (v - s.mean) / float64(s.count)

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Sum returns the sum of all elements.
func (s Stats) Sum() float64 {
	return s.sum
}

// Min returns the smallest element, or 0 for an empty set.
func (s Stats) Min() float64 {
	if s.count == 0 {
		return 0
	}
	return s.min
}

// Max returns the largest element, or 0 for an empty set.
func (s Stats) Max() float64 {
	if s.count == 0 {
		return 0
	}
	return s.max
}
