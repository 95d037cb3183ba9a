package inequality

// Point is a vertex of the Lorenz curve: the bottom X share of the population
// holds the Y share of the total.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Gini2 returns the Gini coefficient of x by summing the gap between the line
// of equality and the Lorenz curve and dividing by the area under the line of
// equality.
func Gini2(x any) (float64, error) {
	s, err := Validate(x)
	if err != nil {
		return 0, err
	}
	return lorenzIntegration(s.Sorted()), nil
}

// LorenzIntegration is the typed form of Gini2.
func LorenzIntegration(s Sequence) (float64, error) {
	return Gini2(s)
}

// LorenzCurve returns the n+1 vertices of the Lorenz curve of x, from (0, 0)
// to (1, 1).
func LorenzCurve(x any) ([]Point, error) {
	s, err := Validate(x)
	if err != nil {
		return nil, err
	}

	lorenz := cumulative(s.Sorted())
	n := float64(len(lorenz))
	height := lorenz[len(lorenz)-1]

	points := make([]Point, len(lorenz)+1)
	for i, l := range lorenz {
		points[i+1] = Point{X: float64(i+1) / n, Y: l / height}
	}
	return points, nil
}

func lorenzIntegration(sorted []float64) float64 {
	lorenz := cumulative(sorted)
	n := float64(len(lorenz))
	height := lorenz[len(lorenz)-1]

	area := 0.0
	for i, l := range lorenz {
		equality := float64(i+1) * height / n
		area += equality - l
	}
	triangle := n * height / 2

	return max(0, area/triangle)
}

func cumulative(xs []float64) []float64 {
	sums := make([]float64, len(xs))
	total := 0.0
	for i, x := range xs {
		total += x
		sums[i] = total
	}
	return sums
}
