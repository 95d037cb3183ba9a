package inequality

import "math"

// DefaultTolerance is the relative tolerance CrossCheck uses when none is given.
const DefaultTolerance = 1e-9

// Comparison holds the output of both estimators for one series.
type Comparison struct {
	RankWeighted float64 `json:"rank_weighted" yaml:"rank_weighted"`
	Lorenz       float64 `json:"lorenz" yaml:"lorenz"`
	Diff         float64 `json:"diff" yaml:"diff"`
	Agree        bool    `json:"agree" yaml:"agree"`
}

// CrossCheck validates and sorts x once and evaluates both estimators.
// A tol <= 0 selects DefaultTolerance. Disagreement is reported in the
// result, not as an error.
func CrossCheck(x any, tol float64) (Comparison, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	s, err := Validate(x)
	if err != nil {
		return Comparison{}, err
	}

	sorted := s.Sorted()
	rw := rankWeighted(sorted)
	lz := lorenzIntegration(sorted)

	return Comparison{
		RankWeighted: rw,
		Lorenz:       lz,
		Diff:         math.Abs(rw - lz),
		Agree:        Agrees(rw, lz, tol),
	}, nil
}

// Agrees reports whether a and b are equal within relative tolerance tol.
// Values closer than tol in absolute terms always agree, so two zero
// coefficients compare equal.
func Agrees(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}
	return diff <= tol*math.Max(math.Abs(a), math.Abs(b))
}
