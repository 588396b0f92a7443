package query

import (
	"strings"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DateFields are the columns of the collisions dataset holding dates.
var DateFields = []string{"collision_date", "process_date"}

// Load executes query with given cursor and materializes its result as a frame.
// With withColumnNames the frame columns are the result column names,
// otherwise columns are labeled by position.
func Load(cursor Cursor, query string, withColumnNames bool) (*frame.Frame, error) {
	logrus.Debugf("executing query %q", query)
	if err := cursor.Execute(query); err != nil {
		return nil, errors.Wrapf(err, "executing query %q failed", query)
	}

	rows, err := cursor.FetchAll()
	if err != nil {
		return nil, errors.Wrapf(err, "fetching results of query %q failed", query)
	}
	logrus.Debugf("query returned %d rows", len(rows))

	if !withColumnNames {
		return frame.FromRows(rows)
	}
	return frame.New(cursor.Description(), rows)
}

// DateColumns returns date fields used by the query, so they can be parsed as dates.
// Query selecting every column (with `*`) uses all of them.
// Nil is returned when query does not refer to any date field.
func DateColumns(query string) []string {
	if strings.Contains(query, "*") {
		dates := make([]string, len(DateFields))
		copy(dates, DateFields)
		return dates
	}

	var dates []string
	for _, field := range DateFields {
		if strings.Contains(query, field) {
			dates = append(dates, field)
		}
	}
	return dates
}

// LoadWithDates loads query result with column names and parses date fields used by the query.
// Date fields which the query mentions but the result does not contain are skipped.
func LoadWithDates(cursor Cursor, query string) (*frame.Frame, error) {
	f, err := Load(cursor, query, true)
	if err != nil {
		return nil, err
	}

	for _, column := range DateColumns(query) {
		if !f.HasColumn(column) {
			continue
		}
		if err := f.ParseDates(column); err != nil {
			return nil, err
		}
	}
	return f, nil
}
