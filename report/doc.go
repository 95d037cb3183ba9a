// Package report finishes and saves Lorenz curve charts.
//
// A Chart pairs the Lorenz curve of a series with its Gini coefficient from
// both estimators. Finalise applies titles, labels and footers and writes the
// chart to disk:
//
//	chart, err := report.NewLorenzChart("income", values)
//	path, err := report.Finalise(chart, report.Options{
//	    Title:          "Income: Lorenz curve",
//	    RFooter:        "Source: survey",
//	    ChartDirectory: "charts",
//	}, logger)
//	// path == "charts/Income- Lorenz curve.svg"
//
// The file name is SaveAs when given, otherwise ChartDirectory/Title+SaveTag
// with the SaveType extension. Supported types are svg, csv, json and yaml.
package report
