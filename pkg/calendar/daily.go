package calendar

import (
	"sort"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned (wrapped) when a series has no value for a month/day.
var ErrKeyNotFound = errors.New("key not found")

// DailySeries holds one value per month/day in chronological order, e.g. crash counts per day of year.
type DailySeries struct {
	name      string
	keys      []MonthDay
	values    []float64
	positions map[MonthDay]int
}

// NewDailySeries builds series from aligned keys and values. Keys have to be unique.
func NewDailySeries(name string, keys []MonthDay, values []float64) (*DailySeries, error) {
	if len(keys) != len(values) {
		return nil, errors.Errorf("got %d keys and %d values", len(keys), len(values))
	}

	series := &DailySeries{
		name:      name,
		keys:      make([]MonthDay, len(keys)),
		values:    make([]float64, len(values)),
		positions: make(map[MonthDay]int, len(keys)),
	}
	copy(series.keys, keys)
	copy(series.values, values)

	for i, key := range keys {
		if _, ok := series.positions[key]; ok {
			return nil, errors.Errorf("duplicated key %s", key)
		}
		series.positions[key] = i
	}
	return series, nil
}

// CountByDay counts frame rows per month/day of given date column.
// Rows with empty date are skipped. Keys are ordered chronologically.
func CountByDay(f *frame.Frame, dateColumn, name string) (*DailySeries, error) {
	values, err := f.Column(dateColumn)
	if err != nil {
		return nil, err
	}

	counts := map[MonthDay]float64{}
	for i, v := range values {
		if v == nil {
			continue
		}
		t, err := frame.ToTime(v)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q row %d", dateColumn, i)
		}
		counts[NewMonthDay(t)]++
	}

	keys := make([]MonthDay, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	ordered := make([]float64, len(keys))
	for i, key := range keys {
		ordered[i] = counts[key]
	}
	return NewDailySeries(name, keys, ordered)
}

// Name returns series name.
func (s *DailySeries) Name() string {
	return s.name
}

// Keys returns month/day keys in series order.
func (s *DailySeries) Keys() []MonthDay {
	return s.keys
}

// Values returns values aligned with Keys.
func (s *DailySeries) Values() []float64 {
	return s.values
}

// Len returns number of days in series.
func (s *DailySeries) Len() int {
	return len(s.keys)
}

// Lookup returns value stored for given month and day.
func (s *DailySeries) Lookup(key MonthDay) (float64, error) {
	position, ok := s.positions[key]
	if !ok {
		return 0, errors.Wrapf(ErrKeyNotFound, "series %q has no value for %s", s.name, key)
	}
	return s.values[position], nil
}
