package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayouts are tried in order when a text cell is parsed as date.
var DateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ToTime converts a cell into time.Time.
func ToTime(v interface{}) (time.Time, error) {
	switch typed := v.(type) {
	case time.Time:
		return typed, nil
	case *time.Time:
		if typed == nil {
			break
		}
		return *typed, nil
	case []byte:
		return parseTime(string(typed))
	case string:
		return parseTime(typed)
	case int64:
		return time.Unix(typed, 0).UTC(), nil
	}
	return time.Time{}, errors.Errorf("cannot convert %T (%v) to date", v, v)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("cannot parse %q as date", s)
}

// ToFloat converts a numeric cell into float64.
func ToFloat(v interface{}) (float64, error) {
	switch typed := v.(type) {
	case float64:
		return typed, nil
	case float32:
		return float64(typed), nil
	case int:
		return float64(typed), nil
	case int8:
		return float64(typed), nil
	case int16:
		return float64(typed), nil
	case int32:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint:
		return float64(typed), nil
	case uint32:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	case []byte:
		return parseFloat(string(typed))
	case string:
		return parseFloat(typed)
	}
	return 0, errors.Errorf("cannot convert %T (%v) to number", v, v)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse %q as number", s)
	}
	return f, nil
}

// ToString returns printable form of a cell. Dates without time of day are printed as dates.
func ToString(v interface{}) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []byte:
		return string(typed)
	case time.Time:
		if typed.Hour() == 0 && typed.Minute() == 0 && typed.Second() == 0 && typed.Nanosecond() == 0 {
			return typed.Format("2006-01-02")
		}
		return typed.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%v", v)
}
