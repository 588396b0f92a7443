package main

import (
	"strconv"
	"strings"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/calendar"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/plot"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/utils/errutil"
	"github.com/pkg/errors"
)

// defaultOffset places annotation text up and right of the annotated day.
var defaultOffset = plot.Point{X: 30, Y: 30}

type annotation struct {
	day    calendar.MonthDay
	text   string
	offset plot.Point
}

// parseAnnotation parses "MM-DD=text" or "MM-DD:dx,dy=text" where dx, dy is text offset in points.
func parseAnnotation(value string) (annotation, error) {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 || parts[1] == "" {
		return annotation{}, errors.Errorf("annotation %q is not in MM-DD=text format", value)
	}

	result := annotation{text: parts[1], offset: defaultOffset}
	key := parts[0]
	if i := strings.Index(key, ":"); i >= 0 {
		offset, err := parseOffset(key[i+1:])
		if err != nil {
			return annotation{}, errors.Wrapf(err, "annotation %q", value)
		}
		result.offset = offset
		key = key[:i]
	}

	day, err := calendar.ParseMonthDay(key)
	if err != nil {
		return annotation{}, errors.Wrapf(err, "annotation %q", value)
	}
	result.day = day
	return result, nil
}

func parseOffset(value string) (plot.Point, error) {
	coords := strings.Split(value, ",")
	if len(coords) != 2 {
		return plot.Point{}, errors.Errorf("offset %q is not in dx,dy format", value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return plot.Point{}, errors.Wrapf(err, "offset %q", value)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return plot.Point{}, errors.Wrapf(err, "offset %q", value)
	}
	return plot.Point{X: x, Y: y}, nil
}

// parseAnnotations parses all values and reports every malformed one.
func parseAnnotations(values []string) ([]annotation, error) {
	var errs errutil.Collection
	annotations := []annotation{}
	for _, value := range values {
		a, err := parseAnnotation(value)
		errs.Add(err)
		if err == nil {
			annotations = append(annotations, a)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return annotations, nil
}
