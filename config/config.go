// Package config loads the YAML configuration of the gini command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/sartorproj/goineq/inequality"
	"github.com/sartorproj/goineq/report"
	"github.com/sartorproj/goineq/series"
	"github.com/sartorproj/goineq/synth"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration file.
type Config struct {
	Tolerance float64        `yaml:"tolerance"`
	LogLevel  string         `yaml:"log_level"`
	CSV       CSV            `yaml:"csv"`
	Report    report.Options `yaml:"report"`
	Synth     synth.Options  `yaml:"synth"`
}

// CSV configures how observation files are read.
type CSV struct {
	ValueColumn string `yaml:"value_column"`
	GroupColumn string `yaml:"group_column"`
	Delimiter   string `yaml:"delimiter"`
	SkipRows    int    `yaml:"skip_rows"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Tolerance: inequality.DefaultTolerance,
		LogLevel:  "info",
		CSV: CSV{
			GroupColumn: "Group",
			Delimiter:   ",",
		},
		Report: report.Options{
			SaveType: report.DefaultSaveType,
		},
		Synth: synth.DefaultOptions(),
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Tolerance <= 0 || c.Tolerance >= 1 {
		return fmt.Errorf("tolerance must be in (0, 1), got %g", c.Tolerance)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.CSV.Delimiter) > 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	if c.CSV.SkipRows < 0 {
		return errors.New("csv.skip_rows must not be negative")
	}
	if err := c.Synth.Validate(); err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// CSVOptions converts the csv section for package series.
func (c Config) CSVOptions() *series.CSVOptions {
	opts := series.DefaultCSVOptions()
	opts.ValueColumn = c.CSV.ValueColumn
	opts.GroupColumn = c.CSV.GroupColumn
	opts.SkipRows = c.CSV.SkipRows
	if r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	return opts
}
