// Package goineq measures inequality with the Gini coefficient.
//
// The Gini coefficient summarizes how unevenly a total is spread over a set
// of strictly positive observations: 0 means every observation is equal, and
// values approach 1 as the total concentrates in a single observation.
//
// # Features
//
//   - Rank-weighted Gini estimator
//   - Lorenz-integration Gini estimator, for cross-checking
//   - Lorenz curve vertices for plotting
//   - Capability-based input: any type with Len, Min, Sum and Sorted
//   - CSV loading with group filtering
//   - Synthetic random-walk tables and positive income draws
//   - Chart finishing and saving as SVG, CSV, JSON or YAML
//
// # Quick Start
//
//	g, err := inequality.Gini([]float64{1, 2, 3, 4, 5}) // 0.2667
//
// Cross-check both estimators:
//
//	cmp, err := inequality.CrossCheck(values, inequality.DefaultTolerance)
//
// Load a column and save its Lorenz curve:
//
//	s, err := series.LoadCSVColumn("incomes.csv", "income")
//	chart, err := report.NewLorenzChart(s.Name, s)
//	path, err := report.Finalise(chart, report.Options{Title: "Incomes", ChartDirectory: "charts"}, nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - inequality: Validation and both Gini estimators
//   - series: Observation series and CSV I/O
//   - synth: Synthetic data generation
//   - report: Lorenz chart rendering and saving
//   - buildinfo: Module versions of the running binary
//   - config: YAML configuration for the gini command
//
// The gini command in cmd/gini exposes all of the above on the command line.
//
// # References
//
//   - StatsDirect, "Gini coefficient of inequality"
//   - Lorenz, M. O. (1905). Methods of measuring the concentration of wealth
package goineq
