package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/sartorproj/goineq/config"
	"github.com/sartorproj/goineq/series"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand after the root pre-run.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gini",
		Short: "Measure inequality with the Gini coefficient",
		Long: `gini computes the Gini coefficient of a series of strictly positive
observations, draws Lorenz curves and generates synthetic data to try them on.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newComputeCmd(a),
		newLorenzCmd(a),
		newSynthCmd(a),
		newVersionsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(a.logger)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

// inputFlags selects where observations come from.
type inputFlags struct {
	file       string
	column     string
	group      string
	allColumns bool
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.file, "file", "f", "", `CSV file to read ("-" for stdin)`)
	cmd.Flags().StringVarP(&in.column, "column", "c", "", "value column (default from config, then y/value or the last column)")
	cmd.Flags().StringVarP(&in.group, "group", "g", "", "only use rows whose group column equals this value")
}

// load returns the series named by positional values or the input flags.
func (a *app) load(cmd *cobra.Command, args []string, in inputFlags) ([]*series.Series, error) {
	if len(args) > 0 {
		if in.file != "" {
			return nil, fmt.Errorf("pass either values or --file, not both")
		}
		values := make([]float64, len(args))
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i+1, err)
			}
			values[i] = v
		}
		return []*series.Series{series.New("values", values)}, nil
	}

	if in.file == "" {
		return nil, fmt.Errorf("no input: pass values or --file")
	}

	opts := a.cfg.CSVOptions()
	if in.column != "" {
		opts.ValueColumn = in.column
	}
	if in.group != "" {
		opts.GroupFilter = in.group
	} else {
		opts.GroupColumn = ""
	}

	var r io.Reader = cmd.InOrStdin()
	if in.file != "-" {
		f, err := os.Open(in.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if in.allColumns {
		cols, err := series.LoadCSVColumns(r, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in.file, err)
		}
		return cols, nil
	}

	s, err := series.LoadCSVFromReader(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.file, err)
	}
	a.logger.Debug("loaded series", "file", in.file, "column", s.Name, "n", s.Len())
	return []*series.Series{s}, nil
}
