package synth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/sartorproj/goineq/series"
)

const (
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower = "abcdefghijklmnopqrstuvwxyz"

	// DateLayout is the format of the Date column.
	DateLayout = "2006-01-02"
)

// StartDate is the first value of the Date column.
var StartDate = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options controls the shape of a generated Frame.
type Options struct {
	Rows   int   `yaml:"rows"`   // Number of rows, at least 1
	Cols   int   `yaml:"cols"`   // Number of value columns, 1 to 26
	Cats   int   `yaml:"cats"`   // Number of group categories, 0 to 26 (0 omits the Group column)
	Dates  bool  `yaml:"dates"`  // Whether to add a Date column
	Seed   int64 `yaml:"seed"`   // Random seed, used when Seeded is set
	Seeded bool  `yaml:"seeded"` // Whether output is reproducible
}

// DefaultOptions returns 1000 rows of five columns with four groups and dates,
// seeded with 42.
func DefaultOptions() Options {
	return Options{
		Rows:   1000,
		Cols:   5,
		Cats:   4,
		Dates:  true,
		Seed:   42,
		Seeded: true,
	}
}

// Validate checks the size limits.
func (o Options) Validate() error {
	if o.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", o.Rows)
	}
	if o.Cols < 1 || o.Cols > len(upper) {
		return fmt.Errorf("cols must be between 1 and %d, got %d", len(upper), o.Cols)
	}
	if o.Cats < 0 || o.Cats > len(lower) {
		return fmt.Errorf("cats must be between 0 and %d, got %d", len(lower), o.Cats)
	}
	return nil
}

// Frame is a generated table.
type Frame struct {
	Columns []*series.Series
	Groups  []string    // nil when no Group column was requested
	Dates   []time.Time // nil when no Date column was requested
}

// Generate builds a Frame of random walks. Each column is the cumulative sum
// of uniform steps in [-0.5, 0.5).
func Generate(opts Options) (*Frame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := newRand(opts.Seeded, opts.Seed)

	frame := &Frame{Columns: make([]*series.Series, opts.Cols)}
	for c := range frame.Columns {
		frame.Columns[c] = series.New(upper[c:c+1], make([]float64, opts.Rows))
	}

	// Row-major draws keep a given seed stable when columns are added.
	walk := make([]float64, opts.Cols)
	for i := 0; i < opts.Rows; i++ {
		for c, col := range frame.Columns {
			walk[c] += r.Float64() - 0.5
			col.Values[i] = walk[c]
		}
	}

	if opts.Cats > 0 {
		frame.Groups = make([]string, opts.Rows)
		for i := range frame.Groups {
			k := r.IntN(opts.Cats)
			frame.Groups[i] = lower[k : k+1]
		}
	}

	if opts.Dates {
		frame.Dates = make([]time.Time, opts.Rows)
		for i := range frame.Dates {
			frame.Dates[i] = StartDate.AddDate(0, 0, i)
		}
	}

	return frame, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return f.Columns[0].Len()
}

// Names returns the header of the frame as written by WriteCSV.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.Columns)+2)
	for _, col := range f.Columns {
		names = append(names, col.Name)
	}
	if f.Groups != nil {
		names = append(names, "Group")
	}
	if f.Dates != nil {
		names = append(names, "Date")
	}
	return names
}

// Column returns the value column with the given name, or nil.
func (f *Frame) Column(name string) *series.Series {
	for _, col := range f.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

// Group returns the rows of a value column that belong to one category.
func (f *Frame) Group(column, category string) (*series.Series, error) {
	col := f.Column(column)
	if col == nil {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	if f.Groups == nil {
		return nil, errors.New("frame has no Group column")
	}

	var values []float64
	for i, g := range f.Groups {
		if g == category {
			values = append(values, col.Values[i])
		}
	}
	return series.New(column, values), nil
}

// WriteCSV writes the frame with a header row.
func (f *Frame) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(f.Names()); err != nil {
		return err
	}

	record := make([]string, 0, len(f.Columns)+2)
	for i := 0; i < f.Len(); i++ {
		record = record[:0]
		for _, col := range f.Columns {
			record = append(record, strconv.FormatFloat(col.Values[i], 'f', -1, 64))
		}
		if f.Groups != nil {
			record = append(record, f.Groups[i])
		}
		if f.Dates != nil {
			record = append(record, f.Dates[i].Format(DateLayout))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func newRand(seeded bool, seed int64) *rand.Rand {
	if !seeded {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
