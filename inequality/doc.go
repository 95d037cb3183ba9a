// Package inequality computes the Gini coefficient of a series of strictly
// positive observations.
//
// Two estimators are provided. They derive the same statistic in different
// ways, so their agreement can be used as a correctness check.
//
// # Rank-Weighted Estimator
//
// Sort the values ascending and weight each by its 1-based rank:
//
//	G = Σ (2i - n - 1)·xᵢ / (n·Σ xᵢ)
//
//	g, err := inequality.Gini([]float64{1, 2, 3, 4, 5}) // 20/75
//
// # Lorenz-Integration Estimator
//
// Integrate the discrete Lorenz curve against the line of equality and
// normalize by the area under the line of equality:
//
//	g, err := inequality.Gini2([]float64{1, 2, 3, 4, 5})
//
// # Input
//
// Any type implementing Sequence is accepted. Plain numeric slices and
// go-moremath samples are adapted automatically:
//
//	g, err := inequality.Gini(inequality.Of([]int{3, 1, 4, 1, 5}))
//	g, err := inequality.Gini(&stats.Sample{Xs: xs})
//	g, err := inequality.Gini(series.New("income", values))
//
// # Errors
//
// Every operation validates eagerly. An unsupported input type yields an
// error matching ErrType, and an empty series, a non-positive value or a
// non-finite value yields an error matching ErrValue:
//
//	if errors.Is(err, inequality.ErrValue) {
//	    // zero or negative observations
//	}
//
// # Cross-checking
//
// CrossCheck runs both estimators over a single sorted copy and reports
// whether they agree:
//
//	cmp, err := inequality.CrossCheck(values, inequality.DefaultTolerance)
//	if !cmp.Agree {
//	    // numerical trouble
//	}
//
// All functions are pure. They hold no state and may be called concurrently.
package inequality
