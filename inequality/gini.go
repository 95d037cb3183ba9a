package inequality

// Gini returns the Gini coefficient of x using the rank-weighted formula.
//
// The result lies in [0, 1). It is 0 when every value is equal, including
// the single-observation case.
func Gini(x any) (float64, error) {
	s, err := Validate(x)
	if err != nil {
		return 0, err
	}
	return rankWeighted(s.Sorted()), nil
}

// RankWeighted is the typed form of Gini.
func RankWeighted(s Sequence) (float64, error) {
	return Gini(s)
}

// rankWeighted evaluates Σ (2i - n - 1)·xᵢ / (n·Σ xᵢ) over ascending values.
func rankWeighted(sorted []float64) float64 {
	n := float64(len(sorted))

	weighted, total := 0.0, 0.0
	for i, x := range sorted {
		rank := float64(i + 1)
		weighted += (2*rank - n - 1) * x
		total += x
	}

	return max(0, weighted/(n*total))
}
