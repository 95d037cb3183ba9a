package series

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned when a CSV source holds no usable observations.
var ErrNoData = errors.New("no valid data found in CSV")

// ErrNoGroupColumn is returned when a group filter is set without a group
// column to apply it to.
var ErrNoGroupColumn = errors.New("group filter requires a group column")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y", "value" or the last column)
	GroupColumn string // Column name for the group label (optional, for filtering)
	GroupFilter string // Value to filter the group column by
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// LoadCSVFromReader loads a single series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if opts.GroupFilter != "" && opts.GroupColumn == "" {
		return nil, fmt.Errorf("%w (filter %q)", ErrNoGroupColumn, opts.GroupFilter)
	}

	reader, err := newReader(r, opts)
	if err != nil {
		return nil, err
	}

	valueIdx, groupIdx := 0, -1
	name := opts.ValueColumn

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		valueIdx = -1
		for i, h := range header {
			h = cleanCell(h)
			switch {
			case opts.ValueColumn != "" && h == opts.ValueColumn:
				valueIdx = i
			case opts.ValueColumn == "" && valueIdx == -1 && (h == "y" || h == "value" || h == "Value"):
				valueIdx = i
			case opts.GroupColumn != "" && h == opts.GroupColumn:
				groupIdx = i
			}
		}

		if valueIdx == -1 {
			if opts.ValueColumn != "" {
				return nil, fmt.Errorf("column %q not found", opts.ValueColumn)
			}
			// Default to last column if not specified
			valueIdx = len(header) - 1
		}
		if opts.GroupColumn != "" && groupIdx == -1 {
			return nil, fmt.Errorf("group column %q not found", opts.GroupColumn)
		}
		name = cleanCell(header[valueIdx])
	} else if opts.GroupFilter != "" {
		return nil, fmt.Errorf("group column %q cannot be located without a header row", opts.GroupColumn)
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !inGroup(record, groupIdx, opts.GroupFilter) {
			continue
		}
		if valueIdx >= len(record) {
			continue
		}
		if v, ok := parseCell(record[valueIdx]); ok {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	return New(name, values), nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFiltered loads the rows of one group from a CSV file.
func LoadCSVFiltered(filename string, groupColumn, groupValue, valueColumn string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.GroupColumn = groupColumn
	opts.GroupFilter = groupValue
	opts.ValueColumn = valueColumn
	return LoadCSV(filename, opts)
}

// LoadCSVColumns loads every numeric column of a CSV with a header row, in
// header order. A column is numeric when each non-missing cell parses as a
// float. ValueColumn is ignored; the group filter still applies.
func LoadCSVColumns(r io.Reader, opts *CSVOptions) ([]*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if !opts.HasHeader {
		return nil, errors.New("loading all columns requires a header row")
	}
	if opts.GroupFilter != "" && opts.GroupColumn == "" {
		return nil, fmt.Errorf("%w (filter %q)", ErrNoGroupColumn, opts.GroupFilter)
	}

	reader, err := newReader(r, opts)
	if err != nil {
		return nil, err
	}

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	groupIdx := -1
	if opts.GroupColumn != "" {
		for i, h := range header {
			if cleanCell(h) == opts.GroupColumn {
				groupIdx = i
			}
		}
		if groupIdx == -1 {
			return nil, fmt.Errorf("group column %q not found", opts.GroupColumn)
		}
	}

	columns := make([][]float64, len(header))
	numeric := make([]bool, len(header))
	for i := range numeric {
		numeric[i] = i != groupIdx
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !inGroup(record, groupIdx, opts.GroupFilter) {
			continue
		}

		for i := range header {
			if !numeric[i] || i >= len(record) {
				continue
			}
			cell := cleanCell(record[i])
			if isMissing(cell) {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric[i] = false
				columns[i] = nil
				continue
			}
			columns[i] = append(columns[i], v)
		}
	}

	var result []*Series
	for i, h := range header {
		if numeric[i] && len(columns[i]) > 0 {
			result = append(result, New(cleanCell(h), columns[i]))
		}
	}

	if len(result) == 0 {
		return nil, ErrNoData
	}
	return result, nil
}

// SaveCSV saves a series to a one-column CSV file headed by the series name.
func SaveCSV(s *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, s); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes a series as a one-column CSV.
func WriteCSV(w io.Writer, s *Series) error {
	writer := bufio.NewWriter(w)

	name := s.Name
	if name == "" {
		name = "y"
	}
	writer.WriteString(name)
	writer.WriteString("\n")

	for _, v := range s.Values {
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}

func newReader(r io.Reader, opts *CSVOptions) (*csv.Reader, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}
	return reader, nil
}

func inGroup(record []string, groupIdx int, filter string) bool {
	if filter == "" || groupIdx < 0 {
		return true
	}
	return groupIdx < len(record) && cleanCell(record[groupIdx]) == filter
}

func parseCell(cell string) (float64, bool) {
	cell = cleanCell(cell)
	if isMissing(cell) {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false // Skip invalid values
	}
	return v, true
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func isMissing(cell string) bool {
	return cell == "" || cell == "NA" || cell == "NaN" || cell == "null"
}
