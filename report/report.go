package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sartorproj/goineq/inequality"
)

// Defaults applied by Finalise.
const (
	DefaultWidth    = 8.0 // inches
	DefaultHeight   = 4.0 // inches
	DefaultDPI      = 125
	DefaultPad      = 1.2
	DefaultSaveType = "svg"
)

// ErrUnknownSaveType is returned for a SaveType Render does not support.
var ErrUnknownSaveType = errors.New("unknown save type")

// Chart is a Lorenz curve with the Gini coefficient of the same series.
type Chart struct {
	Name   string                `json:"name" yaml:"name"`
	Points []inequality.Point    `json:"points" yaml:"points"`
	Gini   inequality.Comparison `json:"gini" yaml:"gini"`
}

// NewLorenzChart builds a chart from any input inequality.Validate accepts.
func NewLorenzChart(name string, x any) (*Chart, error) {
	points, err := inequality.LorenzCurve(x)
	if err != nil {
		return nil, err
	}
	cmp, err := inequality.CrossCheck(x, inequality.DefaultTolerance)
	if err != nil {
		return nil, err
	}
	return &Chart{Name: name, Points: points, Gini: cmp}, nil
}

// Options holds the finishing touches and save settings for a chart.
type Options struct {
	Title   string `yaml:"title"`
	XLabel  string `yaml:"xlabel"`
	YLabel  string `yaml:"ylabel"`
	LFooter string `yaml:"lfooter"`
	RFooter string `yaml:"rfooter"`

	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
	Pad    float64 `yaml:"pad"`    // layout padding, in multiples of the font size

	XLim []float64 `yaml:"xlim"` // [min, max] of the x axis (default [0, 1])
	YLim []float64 `yaml:"ylim"` // [min, max] of the y axis (default [0, 1])

	SaveAs         string `yaml:"save_as"`
	ChartDirectory string `yaml:"chart_directory"`
	SaveType       string `yaml:"save_type"`
	SaveTag        string `yaml:"save_tag"`
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Pad <= 0 {
		o.Pad = DefaultPad
	}
	if o.SaveType == "" {
		o.SaveType = DefaultSaveType
	}
	if o.XLabel == "" {
		o.XLabel = "Cumulative share of population"
	}
	if o.YLabel == "" {
		o.YLabel = "Cumulative share of total"
	}
	if len(o.XLim) == 0 {
		o.XLim = []float64{0, 1}
	}
	if len(o.YLim) == 0 {
		o.YLim = []float64{0, 1}
	}
	return o
}

// validate rejects options Render cannot honour. It expects withDefaults to
// have been applied.
func (o Options) validate() error {
	switch strings.ToLower(o.SaveType) {
	case "svg", "csv", "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSaveType, o.SaveType)
	}
	if err := checkLimits("xlim", o.XLim); err != nil {
		return err
	}
	return checkLimits("ylim", o.YLim)
}

func checkLimits(name string, lim []float64) error {
	if len(lim) != 2 {
		return fmt.Errorf("%s must have two values, got %d", name, len(lim))
	}
	if math.IsInf(lim[0], 0) || math.IsInf(lim[1], 0) || !(lim[0] < lim[1]) {
		return fmt.Errorf("%s must be increasing, got [%g, %g]", name, lim[0], lim[1])
	}
	return nil
}

// SavePath resolves where Finalise writes the chart. It returns "" when
// neither SaveAs nor ChartDirectory is set.
func (o Options) SavePath() string {
	if o.SaveAs != "" {
		return o.SaveAs
	}
	if o.ChartDirectory == "" {
		return ""
	}

	saveType := o.SaveType
	if saveType == "" {
		saveType = DefaultSaveType
	}
	title := strings.NewReplacer(":", "-", "/", "-").Replace(o.Title)
	return filepath.Join(o.ChartDirectory, title+o.SaveTag+"."+saveType)
}

// Finalise renders chart with opts and saves it. It returns the path written,
// or "" when opts names no destination. A nil logger uses slog.Default.
func Finalise(chart *Chart, opts Options, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return "", err
	}

	if opts.Title == "" {
		logger.Warn("the plot title has not been set", "chart", chart.Name)
	}

	path := opts.SavePath()
	if path == "" {
		logger.Warn("chart not saved: set save_as or chart_directory", "chart", chart.Name)
		return "", nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create chart directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Render(file, chart, opts); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	logger.Info("chart saved", "chart", chart.Name, "path", path, "gini", chart.Gini.RankWeighted)
	return path, nil
}

// Render writes chart to w in the format named by opts.SaveType.
func Render(w io.Writer, chart *Chart, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return err
	}

	switch strings.ToLower(opts.SaveType) {
	case "svg":
		return writeSVG(w, chart, opts)
	case "csv":
		return writeCSV(w, chart)
	case "json":
		return writeJSON(w, chart, opts)
	default:
		return writeYAML(w, chart, opts)
	}
}
