package main

import (
	"fmt"

	"github.com/sartorproj/goineq/report"
	"github.com/spf13/cobra"
)

func newLorenzCmd(a *app) *cobra.Command {
	var (
		in   inputFlags
		opts report.Options
	)

	cmd := &cobra.Command{
		Use:   "lorenz [values...]",
		Short: "Draw and save the Lorenz curve of a series",
		Long: `Draw the Lorenz curve of a series against the line of equality and save it.

The file is --save-as when given ("-" writes to stdout), otherwise
<chart-dir>/<title><save-tag>.<save-type>. Unset flags fall back to the
report section of the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.load(cmd, args, in)
			if err != nil {
				return err
			}
			s := list[0]

			chart, err := report.NewLorenzChart(s.Name, s)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}

			merged := mergeReportOptions(a.cfg.Report, opts, cmd)
			if merged.SaveAs == "-" {
				return report.Render(cmd.OutOrStdout(), chart, merged)
			}

			path, err := report.Finalise(chart, merged, a.logger)
			if err != nil {
				return err
			}
			if path != "" {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	in.register(cmd)
	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", "", "chart title")
	f.StringVar(&opts.XLabel, "xlabel", "", "x axis label")
	f.StringVar(&opts.YLabel, "ylabel", "", "y axis label")
	f.StringVar(&opts.LFooter, "lfooter", "", "left footer")
	f.StringVar(&opts.RFooter, "rfooter", "", "right footer")
	f.Float64Var(&opts.Width, "width", 0, "width in inches")
	f.Float64Var(&opts.Height, "height", 0, "height in inches")
	f.Float64Var(&opts.Pad, "pad", 0, "layout padding")
	f.StringVar(&opts.SaveAs, "save-as", "", `output file ("-" for stdout)`)
	f.StringVar(&opts.ChartDirectory, "chart-dir", "", "directory for <title><tag>.<type>")
	f.StringVar(&opts.SaveType, "save-type", "", "svg, csv, json or yaml")
	f.StringVar(&opts.SaveTag, "save-tag", "", "suffix appended to the title in the file name")
	return cmd
}

// mergeReportOptions overlays the flags the user set onto the configured
// options.
func mergeReportOptions(base, flags report.Options, cmd *cobra.Command) report.Options {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("title") {
		base.Title = flags.Title
	}
	if set("xlabel") {
		base.XLabel = flags.XLabel
	}
	if set("ylabel") {
		base.YLabel = flags.YLabel
	}
	if set("lfooter") {
		base.LFooter = flags.LFooter
	}
	if set("rfooter") {
		base.RFooter = flags.RFooter
	}
	if set("width") {
		base.Width = flags.Width
	}
	if set("height") {
		base.Height = flags.Height
	}
	if set("pad") {
		base.Pad = flags.Pad
	}
	if set("save-as") {
		base.SaveAs = flags.SaveAs
	}
	if set("chart-dir") {
		base.ChartDirectory = flags.ChartDirectory
	}
	if set("save-type") {
		base.SaveType = flags.SaveType
	}
	if set("save-tag") {
		base.SaveTag = flags.SaveTag
	}
	return base
}
