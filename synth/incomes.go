package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Distribution draws one strictly positive observation.
type Distribution interface {
	Draw(r *rand.Rand) float64
}

// LogNormal is exp(N(Mu, Sigma²)), the usual shape of income data.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

func (d LogNormal) Draw(r *rand.Rand) float64 {
	return math.Exp(d.Mu + d.Sigma*r.NormFloat64())
}

// Pareto has minimum Xm and tail index Alpha. Smaller Alpha means heavier
// concentration; for Alpha > 1 the Gini coefficient is 1/(2·Alpha-1).
type Pareto struct {
	Xm    float64
	Alpha float64
}

func (d Pareto) Draw(r *rand.Rand) float64 {
	// 1-U lies in (0, 1], so the power is finite.
	return d.Xm / math.Pow(1-r.Float64(), 1/d.Alpha)
}

// Uniform draws from [Lo, Hi). Lo must be positive.
type Uniform struct {
	Lo float64
	Hi float64
}

func (d Uniform) Draw(r *rand.Rand) float64 {
	return d.Lo + (d.Hi-d.Lo)*r.Float64()
}

// Incomes draws n values from dist using a generator seeded with seed.
func Incomes(n int, dist Distribution, seed int64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("n must be non-negative, got %d", n)
	}
	if dist == nil {
		return nil, fmt.Errorf("no distribution given")
	}
	r := newRand(true, seed)
	values := make([]float64, n)
	for i := range values {
		values[i] = dist.Draw(r)
	}
	return values, nil
}
