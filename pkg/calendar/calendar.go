package calendar

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ReferenceYear is a leap year used to place any month/day on a common day of year axis,
// so February 29 has its own position.
const ReferenceYear = 2016

// MonthDay identifies a day of a year regardless of the year itself.
type MonthDay struct {
	Month time.Month
	Day   int
}

// NewMonthDay returns MonthDay of given moment.
func NewMonthDay(t time.Time) MonthDay {
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

// String returns MM-DD representation.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// Before orders month days chronologically.
func (md MonthDay) Before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

// ParseMonthDay parses MM-DD.
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("2006-01-02", fmt.Sprintf("%d-%s", ReferenceYear, s))
	if err != nil {
		return MonthDay{}, errors.Wrapf(err, "cannot parse %q as month-day", s)
	}
	return NewMonthDay(t), nil
}

// DayOfYear returns 1-based ordinal day of given month and day in the reference year.
func DayOfYear(month time.Month, day int) (int, error) {
	t := time.Date(ReferenceYear, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return 0, errors.Errorf("day %d is out of range for month %d", day, int(month))
	}
	return t.YearDay(), nil
}

// MonthStarts finds positions of month boundaries in chronologically ordered index.
// Majors are positions of the first day of every month and of December 31 closing the year.
// Minors are midpoints between consecutive majors and are used as label positions.
func MonthStarts(index []MonthDay) (majors []int, minors []float64) {
	majors = []int{}
	for x, md := range index {
		if md.Day == 1 {
			majors = append(majors, x)
		}
		if md.Month == time.December && md.Day == 31 {
			majors = append(majors, x)
		}
	}

	minors = []float64{}
	for i := 0; i < len(majors)-1; i++ {
		start, end := majors[i], majors[i+1]
		minors = append(minors, float64(start)+float64(end-start)/2.)
	}

	return majors, minors
}
