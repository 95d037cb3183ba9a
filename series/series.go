// Package series provides observation series and their CSV encoding.
package series

import (
	"math"
	"sort"
)

// Series is a named, ordered collection of observations.
type Series struct {
	Name   string
	Values []float64
}

// New creates a series that uses values as its storage.
func New(name string, values []float64) *Series {
	return &Series{
		Name:   name,
		Values: values,
	}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Sum returns the total of all observations.
func (s *Series) Sum() float64 {
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.Values))
}

// Min returns the minimum value in the series, NaN when the series is empty
// or contains NaN.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values {
		if math.IsNaN(v) {
			return v
		}
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Sorted returns the values in ascending order. The series is not modified.
func (s *Series) Sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := s.Sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Slice returns a copy of the observations from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name, Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])
	return &Series{Name: s.Name, Values: values}
}

// Scale returns a copy with every value multiplied by k.
func (s *Series) Scale(k float64) *Series {
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		values[i] = v * k
	}
	return &Series{Name: s.Name, Values: values}
}

// Shift returns a copy with k added to every value. Random-walk data can be
// moved into the positive range this way before measuring inequality.
func (s *Series) Shift(k float64) *Series {
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		values[i] = v + k
	}
	return &Series{Name: s.Name, Values: values}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{Name: s.Name, Values: values}
}
