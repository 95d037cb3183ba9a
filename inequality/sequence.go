package inequality

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Sequence is an ordered, finite collection of observations.
//
// Sorted must return a new ascending slice; implementations must not reorder
// their own storage.
type Sequence interface {
	Len() int
	Min() float64
	Sum() float64
	Sorted() []float64
}

// Real is the set of element types Of accepts.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Values is a Sequence backed by a float64 slice.
type Values []float64

// Of converts any integer or float slice into Values.
func Of[T Real](xs []T) Values {
	v := make(Values, len(xs))
	for i, x := range xs {
		v[i] = float64(x)
	}
	return v
}

// Len returns the number of observations.
func (v Values) Len() int { return len(v) }

// Min returns the smallest observation, or NaN if v is empty or holds a NaN.
func (v Values) Min() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	min := v[0]
	for _, x := range v {
		if math.IsNaN(x) {
			return x
		}
		if x < min {
			min = x
		}
	}
	return min
}

// Sum returns the total of all observations.
func (v Values) Sum() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum
}

// Sorted returns an ascending copy of v.
func (v Values) Sorted() []float64 {
	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)
	return sorted
}

// Sample adapts an unweighted go-moremath sample to Sequence.
type Sample struct {
	stats.Sample
}

// Len returns the number of observations.
func (s Sample) Len() int { return len(s.Xs) }

// Min returns the lower bound of the sample.
func (s Sample) Min() float64 {
	min, _ := s.Bounds()
	return min
}

// Sorted returns the observations in ascending order without touching the
// wrapped sample.
func (s Sample) Sorted() []float64 {
	if s.Sample.Sorted {
		sorted := make([]float64, len(s.Xs))
		copy(sorted, s.Xs)
		return sorted
	}
	return s.Copy().Sort().Xs
}
