package normalize

import (
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrEmptyBaseline is returned (wrapped) when a category has no rows before the cutoff.
var ErrEmptyBaseline = errors.New("no rows in baseline period")

// Config describes which values are normalized and against which period.
type Config struct {
	// FactorColumn splits the frame into compared categories.
	FactorColumn string
	// ValueColumn is divided by the baseline mean.
	ValueColumn string
	// Cutoff ends the baseline period (exclusive).
	Cutoff time.Time
	// Categories to normalize. Rows of other categories stay untouched.
	Categories []string
}

// DefaultConfig returns configuration used for the Ford vs Toyota comparison:
// totals per vehicle make normalized to the first half of 2019.
func DefaultConfig() Config {
	return Config{
		FactorColumn: "vehicle_make",
		ValueColumn:  "total",
		Cutoff:       time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC),
		Categories:   []string{"ford", "toyota"},
	}
}

// Baselines computes mean value of every category over the rows indexed before the cutoff.
func Baselines(f *frame.Frame, config Config) (map[string]float64, error) {
	if f.Index() == nil {
		return nil, errors.Wrap(frame.ErrNoIndex, "baseline needs a date indexed frame")
	}
	for _, column := range []string{config.FactorColumn, config.ValueColumn} {
		if _, err := f.Column(column); err != nil {
			return nil, err
		}
	}

	baselines := make(map[string]float64, len(config.Categories))
	for _, category := range uniqueCategories(config.Categories) {
		early := f.Filter(func(r frame.Row) bool {
			return r.String(config.FactorColumn) == category && r.Before(config.Cutoff)
		})
		if early.Len() == 0 {
			return nil, errors.Wrapf(ErrEmptyBaseline, "category %q before %s", category, config.Cutoff.Format("2006-01-02"))
		}

		mean, err := early.Mean(config.ValueColumn)
		if err != nil {
			return nil, err
		}
		if mean == 0 {
			return nil, errors.Errorf("category %q has zero baseline mean", category)
		}
		baselines[category] = mean
	}
	return baselines, nil
}

// uniqueCategories drops repeated categories keeping first occurrence order.
func uniqueCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	unique := make([]string, 0, len(categories))
	for _, category := range categories {
		if seen[category] {
			continue
		}
		seen[category] = true
		unique = append(unique, category)
	}
	return unique
}

// Normalize rescales values of each category so that its mean over the baseline period equals 1.
// The input frame is not modified, normalized values are stored in a deep copy.
// Every category is divided once, even when listed repeatedly. Missing values stay missing.
func Normalize(f *frame.Frame, config Config) (*frame.Frame, error) {
	baselines, err := Baselines(f, config)
	if err != nil {
		return nil, err
	}

	normalized := f.Copy()
	for _, category := range uniqueCategories(config.Categories) {
		mean := baselines[category]
		logrus.Debugf("normalizing %q by baseline mean %f", category, mean)

		err := normalized.Apply(config.ValueColumn,
			func(r frame.Row) bool { return r.String(config.FactorColumn) == category },
			func(v float64) float64 { return v / mean })
		if err != nil {
			return nil, err
		}
	}
	return normalized, nil
}
