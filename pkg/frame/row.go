package frame

import (
	"time"

	"github.com/pkg/errors"
)

// Row is a read-only view of a single frame row passed to predicates.
type Row struct {
	frame    *Frame
	position int
}

// Position returns row number in the frame the row comes from.
func (r Row) Position() int {
	return r.position
}

// Value returns raw cell of given column. Missing columns give nil.
func (r Row) Value(column string) interface{} {
	values, ok := r.frame.values[column]
	if !ok {
		return nil
	}
	return values[r.position]
}

// String returns printable form of a cell.
func (r Row) String(column string) string {
	return ToString(r.Value(column))
}

// Float returns numeric cell.
func (r Row) Float(column string) (float64, error) {
	return ToFloat(r.Value(column))
}

// Time returns index value of the row.
func (r Row) Time() (time.Time, error) {
	if r.frame.index == nil {
		return time.Time{}, ErrNoIndex
	}
	return r.frame.index[r.position], nil
}

// Before reports whether row index is strictly before given moment.
// Rows of a frame without index are never before anything.
func (r Row) Before(moment time.Time) bool {
	t, err := r.Time()
	if err != nil {
		return false
	}
	return t.Before(moment)
}

// Date returns cell of given column as time.
func (r Row) Date(column string) (time.Time, error) {
	v := r.Value(column)
	if v == nil {
		return time.Time{}, errors.Errorf("column %q has no date in row %d", column, r.position)
	}
	return ToTime(v)
}
