package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is returned when a required header label is absent
// from a sheet. A missing column is a data-contract violation and
// aborts the reader for that file.
var ErrMissingColumn = errors.New("missing column")

// Sheet is the first worksheet of a tabular export: a header row of
// column labels followed by data rows. Columns are addressed by label,
// never by position, because the export tool reorders them freely.
type Sheet struct {
	Name   string
	labels map[string]int
	rows   [][]string
}

// LoadSheet opens an xlsx file and reads its first worksheet.
func LoadSheet(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", name)
	}
	return NewSheet(name, rows[0], rows[1:]...), nil
}

// NewSheet builds a sheet from a header row and data rows. When the
// same label appears twice the first column wins.
func NewSheet(name string, header []string, rows ...[]string) *Sheet {
	labels := make(map[string]int, len(header))
	for i, label := range header {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := labels[label]; !ok {
			labels[label] = i
		}
	}
	return &Sheet{Name: name, labels: labels, rows: rows}
}

// Rows is the number of data rows below the header.
func (s *Sheet) Rows() int { return len(s.rows) }

// HasColumn reports whether the header carries the label.
func (s *Sheet) HasColumn(label string) bool {
	_, ok := s.labels[label]
	return ok
}

func (s *Sheet) cell(row int, label string) (string, error) {
	col, ok := s.labels[label]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, label)
	}
	if row < 0 || row >= len(s.rows) || col >= len(s.rows[row]) {
		return "", nil
	}
	return strings.TrimSpace(s.rows[row][col]), nil
}

// String returns the cell under a required label; the label being
// absent is an error, an empty cell is not.
func (s *Sheet) String(row int, label string) (string, error) {
	return s.cell(row, label)
}

// OptionalString returns the cell under a label that may be absent
// from the file entirely.
func (s *Sheet) OptionalString(row int, label string) string {
	v, err := s.cell(row, label)
	if err != nil {
		return ""
	}
	return v
}

// Int coerces a required cell to an integer; numeric cells may render
// as floats.
func (s *Sheet) Int(row int, label string) (int, error) {
	v, err := s.cell(row, label)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s row %d: %q is not numeric", label, row+2, v)
	}
	return int(math.Round(f)), nil
}

// Float coerces a required cell to a float.
func (s *Sheet) Float(row int, label string) (float64, error) {
	v, err := s.cell(row, label)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s row %d: %q is not numeric", label, row+2, v)
	}
	return f, nil
}

// Bool coerces a required cell to a boolean.
func (s *Sheet) Bool(row int, label string) (bool, error) {
	v, err := s.cell(row, label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	default:
		return false, nil
	}
}

// excelEpoch anchors Excel serial date numbers. The anchor sits two
// days before serial 1's nominal 1900-01-01 to absorb the fictional
// 1900-02-29 Excel carries; it is exact for every serial past
// February 1900, which covers all dates these exports produce.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"1/2/06 15:04",
	"01/02/2006 15:04:05",
	time.RFC3339,
}

// Date coerces a required cell to a UTC date. Cells arrive either as a
// raw Excel serial number or as a formatted date string, depending on
// the cell's number format.
func (s *Sheet) Date(row int, label string) (time.Time, error) {
	v, err := s.cell(row, label)
	if err != nil {
		return time.Time{}, err
	}
	if v == "" {
		return baseDate, nil
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return dateOnly(excelEpoch.AddDate(0, 0, int(serial))), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s row %d: %q is not a date", label, row+2, v)
}
