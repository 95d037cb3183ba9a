package inequality

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiniKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"one to five", []float64{1, 2, 3, 4, 5}, 20.0 / 75.0},
		{"equal", []float64{5, 5, 5, 5}, 0},
		{"single", []float64{42}, 0},
		{"pair", []float64{1, 3}, 0.25},
		{"unsorted", []float64{5, 3, 1, 4, 2}, 20.0 / 75.0},
		{"one rich", []float64{1, 1, 1, 97}, 0.72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Gini(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, g, 1e-12)

			g2, err := Gini2(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, g2, 1e-12)
		})
	}
}

func TestGiniEqualValuesAnyLength(t *testing.T) {
	for n := 1; n <= 50; n++ {
		values := make([]float64, n)
		for i := range values {
			values[i] = 7.25
		}
		g, err := Gini(values)
		require.NoError(t, err)
		assert.Equal(t, 0.0, g, "n=%d", n)
	}
}

func TestGiniSingleObservation(t *testing.T) {
	for _, v := range []float64{1e-9, 0.5, 1, 1e12} {
		g, err := Gini([]float64{v})
		require.NoError(t, err)
		assert.Equal(t, 0.0, g)

		g2, err := Gini2([]float64{v})
		require.NoError(t, err)
		assert.Equal(t, 0.0, g2)
	}
}

func TestEstimatorsAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.IntN(500)
		values := make([]float64, n)
		for i := range values {
			values[i] = math.Exp(r.NormFloat64()*1.5) + 1e-6
		}

		cmp, err := CrossCheck(values, DefaultTolerance)
		require.NoError(t, err)
		assert.True(t, cmp.Agree, "trial %d: rank=%v lorenz=%v diff=%v", trial, cmp.RankWeighted, cmp.Lorenz, cmp.Diff)
		assert.GreaterOrEqual(t, cmp.RankWeighted, 0.0)
		assert.Less(t, cmp.RankWeighted, 1.0)
	}
}

func TestGiniScaleInvariance(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	base, err := Gini(values)
	require.NoError(t, err)

	for _, k := range []float64{0.001, 0.5, 2, 1000} {
		scaled := make([]float64, len(values))
		for i, v := range values {
			scaled[i] = k * v
		}
		g, err := Gini(scaled)
		require.NoError(t, err)
		assert.InDelta(t, base, g, 1e-12, "k=%v", k)
	}
}

func TestGiniOrderInvariance(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	base, err := Gini(values)
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 20; i++ {
		perm := make([]float64, len(values))
		copy(perm, values)
		r.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		g, err := Gini(perm)
		require.NoError(t, err)
		assert.InDelta(t, base, g, 1e-12)
	}
}

func TestGiniPigouDalton(t *testing.T) {
	// Moving mass from a poorer to a richer observation, total unchanged.
	before := []float64{1, 2, 3, 4, 5}
	after := []float64{1, 1, 3, 5, 5}

	gBefore, err := Gini(before)
	require.NoError(t, err)
	gAfter, err := Gini(after)
	require.NoError(t, err)
	assert.Greater(t, gAfter, gBefore)
	assert.InDelta(t, 24.0/75.0, gAfter, 1e-12)

	g2Before, err := Gini2(before)
	require.NoError(t, err)
	g2After, err := Gini2(after)
	require.NoError(t, err)
	assert.Greater(t, g2After, g2Before)
}

func TestGiniDoesNotMutateInput(t *testing.T) {
	values := []float64{5, 3, 1, 4, 2}
	original := append([]float64(nil), values...)

	_, err := Gini(values)
	require.NoError(t, err)
	_, err = Gini2(values)
	require.NoError(t, err)
	_, err = LorenzCurve(values)
	require.NoError(t, err)

	assert.Equal(t, original, values)
}

func TestGiniConcurrentCalls(t *testing.T) {
	values := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	expected, err := Gini(values)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Gini(values)
		}(i)
	}
	wg.Wait()

	for _, g := range results {
		assert.Equal(t, expected, g)
	}
}

func TestGiniInputAdapters(t *testing.T) {
	want := 20.0 / 75.0

	inputs := map[string]any{
		"ints":          []int{5, 4, 3, 2, 1},
		"int64s":        []int64{1, 2, 3, 4, 5},
		"uints":         []uint{1, 2, 3, 4, 5},
		"float32s":      []float32{1, 2, 3, 4, 5},
		"values":        Values{1, 2, 3, 4, 5},
		"of":            Of([]int32{1, 2, 3, 4, 5}),
		"sample":        stats.Sample{Xs: []float64{4, 2, 5, 1, 3}},
		"sample ptr":    &stats.Sample{Xs: []float64{4, 2, 5, 1, 3}},
		"sorted sample": &stats.Sample{Xs: []float64{1, 2, 3, 4, 5}, Sorted: true},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			g, err := Gini(in)
			require.NoError(t, err)
			assert.InDelta(t, want, g, 1e-12)
		})
	}
}

func TestSampleAdapterLeavesSampleUnsorted(t *testing.T) {
	xs := []float64{4, 2, 5, 1, 3}
	samp := &stats.Sample{Xs: xs}

	_, err := Gini(samp)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2, 5, 1, 3}, samp.Xs)
	assert.False(t, samp.Sorted)
}

func TestRankWeightedTyped(t *testing.T) {
	g, err := RankWeighted(Values{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 20.0/75.0, g, 1e-12)

	g2, err := LorenzIntegration(Values{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, g, g2, 1e-12)

	_, err = RankWeighted(nil)
	assert.ErrorIs(t, err, ErrType)
}
