package inequality

import (
	"math"
	"reflect"

	"github.com/aclements/go-moremath/stats"
)

// Validate checks that x is a usable observation series and returns it as a
// Sequence.
//
// x may be any Sequence, a numeric slice, or a go-moremath sample. Anything
// else is a type error. An empty series, a value <= 0, NaN, an infinite
// value or a sum too large for float64 is a value error.
func Validate(x any) (Sequence, error) {
	s, err := asSequence(x)
	if err != nil {
		return nil, err
	}

	if s.Len() == 0 {
		return nil, valueError("series is empty")
	}

	min := s.Min()
	if math.IsNaN(min) {
		return nil, valueError("series contains NaN")
	}
	if min <= 0 {
		return nil, valueError("all values must be positive and non-zero, got minimum %g", min)
	}

	sum := s.Sum()
	if math.IsInf(sum, 0) {
		// Values are positive here, so only the largest can be infinite.
		sorted := s.Sorted()
		if !math.IsInf(sorted[len(sorted)-1], 0) {
			return nil, valueError("sum of values overflows float64")
		}
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, valueError("series contains non-finite values")
	}

	return s, nil
}

func asSequence(x any) (Sequence, error) {
	switch v := x.(type) {
	case nil:
		return nil, typeError("input is nil")
	case []float64:
		return Values(v), nil
	case []float32:
		return Of(v), nil
	case []int:
		return Of(v), nil
	case []int32:
		return Of(v), nil
	case []int64:
		return Of(v), nil
	case []uint:
		return Of(v), nil
	case []uint32:
		return Of(v), nil
	case []uint64:
		return Of(v), nil
	case stats.Sample:
		return fromSample(v)
	case *stats.Sample:
		if v == nil {
			return nil, typeError("input is a nil *stats.Sample")
		}
		return fromSample(*v)
	case Sequence:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, typeError("input is a nil %T", x)
		}
		return v, nil
	default:
		return nil, typeError("%T is not a numeric sequence", x)
	}
}

func fromSample(s stats.Sample) (Sequence, error) {
	if s.Weights != nil {
		return nil, typeError("weighted samples are not supported")
	}
	return Sample{Sample: s}, nil
}
