package frame

import (
	"fmt"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// ErrColumnNotFound is returned (wrapped) when a frame is asked for a column it does not have.
var ErrColumnNotFound = errors.New("column not found")

// ErrNoIndex is returned (wrapped) by operations that need a time index on a frame without one.
var ErrNoIndex = errors.New("frame has no time index")

// Frame is a labeled, column-oriented table.
// Rows are observations, columns are named fields. A Frame can carry a time index
// which is used by time-series operations (filtering by date, normalization windows).
type Frame struct {
	columns []string
	values  map[string][]interface{}
	index   []time.Time
	length  int
}

// New creates a Frame whose columns are labeled with given names.
// Every row has to have exactly one value per column.
func New(columns []string, rows [][]interface{}) (*Frame, error) {
	f := &Frame{
		columns: make([]string, 0, len(columns)),
		values:  make(map[string][]interface{}, len(columns)),
		length:  len(rows),
	}

	for _, name := range columns {
		if _, ok := f.values[name]; ok {
			return nil, errors.Errorf("duplicated column %q", name)
		}
		f.columns = append(f.columns, name)
		f.values[name] = make([]interface{}, 0, len(rows))
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.Errorf("row %d has %d values, expected %d", i, len(row), len(columns))
		}
		for j, name := range columns {
			f.values[name] = append(f.values[name], row[j])
		}
	}

	return f, nil
}

// FromRows creates a Frame without column labels. Columns are named by their position ("0", "1", ...).
func FromRows(rows [][]interface{}) (*Frame, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	columns := make([]string, width)
	for i := range columns {
		columns[i] = strconv.Itoa(i)
	}

	return New(columns, rows)
}

// Columns returns column names in order.
func (f *Frame) Columns() []string {
	columns := make([]string, len(f.columns))
	copy(columns, f.columns)
	return columns
}

// Len returns number of rows.
func (f *Frame) Len() int {
	return f.length
}

// HasColumn checks whether the frame has a column with given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Column returns the values of a column. The returned slice is shared with the frame.
func (f *Frame) Column(name string) ([]interface{}, error) {
	values, ok := f.values[name]
	if !ok {
		return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	return values, nil
}

// Value returns single cell.
func (f *Frame) Value(column string, row int) (interface{}, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= f.length {
		return nil, errors.Errorf("row %d out of range [0, %d)", row, f.length)
	}
	return values[row], nil
}

// Set replaces single cell.
func (f *Frame) Set(column string, row int, value interface{}) error {
	values, err := f.Column(column)
	if err != nil {
		return err
	}
	if row < 0 || row >= f.length {
		return errors.Errorf("row %d out of range [0, %d)", row, f.length)
	}
	values[row] = value
	return nil
}

// Index returns the time index or nil when the frame is not indexed.
func (f *Frame) Index() []time.Time {
	return f.index
}

// SetIndex uses given column as time index of the frame.
// Column values have to be dates already or parsable as dates. The column itself stays in the frame.
func (f *Frame) SetIndex(column string) error {
	if err := f.ParseDates(column); err != nil {
		return err
	}

	values := f.values[column]
	index := make([]time.Time, len(values))
	for i, v := range values {
		t, ok := v.(time.Time)
		if !ok {
			return errors.Errorf("column %q row %d is not a date: %v", column, i, v)
		}
		index[i] = t
	}
	f.index = index
	return nil
}

// ParseDates converts values of given columns into time.Time.
// Nil cells stay nil.
func (f *Frame) ParseDates(columns ...string) error {
	for _, column := range columns {
		values, err := f.Column(column)
		if err != nil {
			return err
		}
		for i, v := range values {
			if v == nil {
				continue
			}
			t, err := ToTime(v)
			if err != nil {
				return errors.Wrapf(err, "parsing column %q row %d", column, i)
			}
			values[i] = t
		}
	}
	return nil
}

// Rows returns frame content row by row. Slices are newly allocated.
func (f *Frame) Rows() [][]interface{} {
	rows := make([][]interface{}, f.length)
	for i := range rows {
		row := make([]interface{}, len(f.columns))
		for j, name := range f.columns {
			row[j] = f.values[name][i]
		}
		rows[i] = row
	}
	return rows
}

// Floats returns column values converted to float64.
func (f *Frame) Floats(column string) ([]float64, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i], err = ToFloat(v)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q row %d", column, i)
		}
	}
	return floats, nil
}

// Strings returns column values in their printable form.
func (f *Frame) Strings(column string) ([]string, error) {
	values, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = ToString(v)
	}
	return strs, nil
}

// Mean computes arithmetic mean of numeric column. Missing (nil) values are skipped.
func (f *Frame) Mean(column string) (float64, error) {
	values, err := f.Column(column)
	if err != nil {
		return 0, err
	}
	floats := make([]float64, 0, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		value, err := ToFloat(v)
		if err != nil {
			return 0, errors.Wrapf(err, "column %q row %d", column, i)
		}
		floats = append(floats, value)
	}
	mean, err := stats.Mean(floats)
	if err != nil {
		return 0, errors.Wrapf(err, "mean of column %q", column)
	}
	return mean, nil
}

// Filter returns a new frame with the rows for which predicate returns true.
// The time index, if present, is filtered along.
func (f *Frame) Filter(predicate func(Row) bool) *Frame {
	filtered := &Frame{
		columns: f.Columns(),
		values:  make(map[string][]interface{}, len(f.columns)),
	}
	for _, name := range f.columns {
		filtered.values[name] = []interface{}{}
	}
	if f.index != nil {
		filtered.index = []time.Time{}
	}

	for i := 0; i < f.length; i++ {
		if !predicate(Row{frame: f, position: i}) {
			continue
		}
		for _, name := range f.columns {
			filtered.values[name] = append(filtered.values[name], copyValue(f.values[name][i]))
		}
		if f.index != nil {
			filtered.index = append(filtered.index, f.index[i])
		}
		filtered.length++
	}
	return filtered
}

// Apply replaces numeric values of a column with fn(value) for the rows selected by predicate.
// The predicate sees the rows as they were before any replacement. Missing (nil) values stay missing.
func (f *Frame) Apply(column string, predicate func(Row) bool, fn func(float64) float64) error {
	values, err := f.Column(column)
	if err != nil {
		return err
	}

	selected := make([]bool, f.length)
	for i := range selected {
		selected[i] = predicate(Row{frame: f, position: i})
	}

	for i, ok := range selected {
		if !ok || values[i] == nil {
			continue
		}
		value, err := ToFloat(values[i])
		if err != nil {
			return errors.Wrapf(err, "column %q row %d", column, i)
		}
		values[i] = fn(value)
	}
	return nil
}

// Copy returns a deep copy of the frame. Changing the copy never changes the original.
func (f *Frame) Copy() *Frame {
	copied := &Frame{
		columns: f.Columns(),
		values:  make(map[string][]interface{}, len(f.columns)),
		length:  f.length,
	}
	for _, name := range f.columns {
		values := make([]interface{}, len(f.values[name]))
		for i, v := range f.values[name] {
			values[i] = copyValue(v)
		}
		copied.values[name] = values
	}
	if f.index != nil {
		copied.index = make([]time.Time, len(f.index))
		copy(copied.index, f.index)
	}
	return copied
}

// String implements fmt.Stringer for debug output.
func (f *Frame) String() string {
	return fmt.Sprintf("Frame(columns=%v, rows=%d, indexed=%t)", f.columns, f.length, f.index != nil)
}

func copyValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		c := make([]byte, len(b))
		copy(c, b)
		return c
	}
	return v
}
