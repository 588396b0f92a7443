package main

import (
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/plot"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/utils/errutil"
	"github.com/pkg/errors"
)

const labelDateLayout = "2006-01-02"

// labelFlag places one comparison label. Empty date keeps the default one.
type labelFlag struct {
	date string
	y    float64
}

func (l labelFlag) place(date *time.Time, y *float64) error {
	*y = l.y
	if l.date == "" {
		return nil
	}
	parsed, err := time.Parse(labelDateLayout, l.date)
	if err != nil {
		return errors.Wrapf(err, "label date %q is not in YYYY-MM-DD format", l.date)
	}
	*date = parsed
	return nil
}

// labelFlags hold label positions of the Ford vs Toyota plot given on command line.
type labelFlags struct {
	toyota, ford, policy labelFlag
}

// apply moves labels of config and reports every malformed date.
func (l labelFlags) apply(config *plot.ComparisonConfig) error {
	var errs errutil.Collection
	for i := range config.Series {
		series := &config.Series[i]
		switch series.Category {
		case "toyota":
			errs.Add(l.toyota.place(&series.LabelDate, &series.LabelY))
		case "ford":
			errs.Add(l.ford.place(&series.LabelDate, &series.LabelY))
		}
	}
	errs.Add(l.policy.place(&config.PolicyLabelDate, &config.PolicyLabelY))
	return errs.ErrorOrNil()
}
