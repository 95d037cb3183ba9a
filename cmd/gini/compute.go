package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sartorproj/goineq/inequality"
	"github.com/sartorproj/goineq/series"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var errDisagree = errors.New("estimators disagree beyond tolerance")

type computeResult struct {
	Series string                 `json:"series" yaml:"series"`
	N      int                    `json:"n" yaml:"n"`
	Gini   float64                `json:"gini" yaml:"gini"`
	Check  *inequality.Comparison `json:"check,omitempty" yaml:"check,omitempty"`
}

func newComputeCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		verify bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "compute [values...]",
		Short: "Compute the Gini coefficient",
		Long: `Compute the Gini coefficient of the given values or of a CSV column.

With --verify both the rank-weighted and the Lorenz-integration estimators are
evaluated and the command fails if they disagree. Negative values must follow
"--" so they are not read as flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.load(cmd, args, in)
			if err != nil {
				return err
			}
			results, err := a.compute(cmd.Context(), list, verify)
			if err != nil {
				return err
			}
			if err := writeResults(cmd.OutOrStdout(), results, output, verify); err != nil {
				return err
			}
			for _, r := range results {
				if r.Check != nil && !r.Check.Agree {
					return fmt.Errorf("%s: %w", r.Series, errDisagree)
				}
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&in.allColumns, "all-columns", false, "compute every numeric column of the file")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check both estimators")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

// compute evaluates every series concurrently. The first invalid series
// cancels the rest.
func (a *app) compute(ctx context.Context, list []*series.Series, verify bool) ([]computeResult, error) {
	results := make([]computeResult, len(list))
	g, ctx := errgroup.WithContext(ctx)

	for i, s := range list {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r := computeResult{Series: s.Name, N: s.Len()}
			if verify {
				cmp, err := inequality.CrossCheck(s, a.cfg.Tolerance)
				if err != nil {
					return fmt.Errorf("%s: %w", s.Name, err)
				}
				if !cmp.Agree {
					a.logger.Warn("estimators disagree", "series", s.Name,
						"rank_weighted", cmp.RankWeighted, "lorenz", cmp.Lorenz, "diff", cmp.Diff)
				}
				r.Gini = cmp.RankWeighted
				r.Check = &cmp
			} else {
				gini, err := inequality.Gini(s)
				if err != nil {
					return fmt.Errorf("%s: %w", s.Name, err)
				}
				r.Gini = gini
			}

			a.logger.Debug("computed", "series", s.Name, "n", r.N, "gini", r.Gini)
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeResults(w io.Writer, results []computeResult, format string, verify bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if len(results) == 1 && !verify {
		_, err := fmt.Fprintln(w, formatFloat(results[0].Gini))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if verify {
		fmt.Fprintln(tw, "SERIES\tN\tRANK-WEIGHTED\tLORENZ\tDIFF\tAGREE")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.3g\t%t\n", r.Series, r.N,
				formatFloat(r.Check.RankWeighted), formatFloat(r.Check.Lorenz), r.Check.Diff, r.Check.Agree)
		}
	} else {
		fmt.Fprintln(tw, "SERIES\tN\tGINI")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Series, r.N, formatFloat(r.Gini))
		}
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
