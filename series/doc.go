// Package series provides the observation series consumed by package
// inequality.
//
// # Creating a Series
//
//	values := []float64{32000, 41000, 58000, 250000}
//	s := series.New("income", values)
//
// A *Series implements inequality.Sequence, so it can be passed straight to
// the estimators:
//
//	g, err := inequality.Gini(s)
//
// # Loading from CSV
//
//	// Load a specific column
//	s, err := series.LoadCSVColumn("data.csv", "A")
//
//	// Load one group of a long-format file
//	s, err := series.LoadCSVFiltered(
//	    "data.csv",
//	    "Group", "b", // group column and value
//	    "A",          // value column
//	)
//
//	// Load every numeric column
//	cols, err := series.LoadCSVColumns(file, nil)
//
// Empty cells and NA, NaN and null markers are skipped.
//
// # Summary Statistics
//
//	sum := s.Sum()
//	mean := s.Mean()
//	min, max := s.Min(), s.Max()
//	median := s.Median()
package series
