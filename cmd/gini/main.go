// Command gini computes the Gini coefficient of observation data.
//
//	gini compute 1 2 3 4 5
//	gini compute --file data.csv --column A --verify
//	gini compute --file data.csv --all-columns
//	gini lorenz --file incomes.csv --title "Incomes" --chart-dir charts
//	gini synth --rows 500 --out data.csv
//	gini versions
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sartorproj/goineq/inequality"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("gini failed", "error", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode lets scripts tell rejected input apart from other failures.
func exitCode(err error) int {
	switch inequality.KindOf(err) {
	case inequality.KindType:
		return 2
	case inequality.KindValue:
		return 3
	default:
		return 1
	}
}
