package plot

import (
	"sort"
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ComparedSeries is one category of a comparison plot and where its label goes.
type ComparedSeries struct {
	Category string
	Label    string
	Color    drawing.Color
	// LabelDate and LabelY place the label in data coordinates.
	LabelDate time.Time
	LabelY    float64
}

// ComparisonConfig holds every constant of the comparison plot.
type ComparisonConfig struct {
	FactorColumn string
	DateColumn   string
	ValueColumn  string

	Series        []ComparedSeries
	LineWidth     float64
	LabelFontSize float64

	// Policy change marker: vertical line at PolicyDate with a label.
	PolicyDate      time.Time
	PolicyLabel     string
	PolicyLabelDate time.Time
	PolicyLabelY    float64
	PolicyColor     drawing.Color

	// Normalization window drawn at y = 1 when NormLabelY is set.
	NormStart     time.Time
	NormEnd       time.Time
	NormLabel     string
	NormLabelDate time.Time
	NormLabelY    *float64
	NormColor     drawing.Color
	NormLineWidth float64

	ReferenceFontSize float64
	// YLimits, when set, fix the y axis range.
	YLimits *[2]float64
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DefaultComparisonConfig returns Ford vs Toyota comparison around the 2020 stay-at-home order.
// Label positions depend on data and usually need to be adjusted by the caller.
func DefaultComparisonConfig() ComparisonConfig {
	return ComparisonConfig{
		FactorColumn: "vehicle_make",
		DateColumn:   "collision_date",
		ValueColumn:  "total",
		Series: []ComparedSeries{
			{Category: "toyota", Label: "Toyota", Color: Orange, LabelDate: day(2019, time.February, 1), LabelY: 0},
			{Category: "ford", Label: "Ford", Color: Blue, LabelDate: day(2019, time.September, 1), LabelY: 0},
		},
		LineWidth:         2,
		LabelFontSize:     30,
		PolicyDate:        day(2020, time.March, 19),
		PolicyLabel:       "Stay-at-home Order",
		PolicyLabelDate:   day(2020, time.March, 27),
		PolicyColor:       Red,
		NormStart:         day(2019, time.January, 1),
		NormEnd:           day(2019, time.June, 30),
		NormLabel:         "Mean normalized from\nJanuary through June",
		NormLabelDate:     day(2018, time.December, 14),
		NormColor:         Green,
		NormLineWidth:     3,
		ReferenceFontSize: 24,
	}
}

// PlotComparison draws value over date for every configured category as step lines
// and labels them with colored texts instead of a legend. It marks the policy change date,
// optionally the normalization window, hides x label and applies y limits.
func PlotComparison(fig *Figure, f *frame.Frame, config ComparisonConfig) error {
	for _, column := range []string{config.FactorColumn, config.DateColumn, config.ValueColumn} {
		if _, err := f.Column(column); err != nil {
			return err
		}
	}
	fig.SetTimeAxis(true)

	for _, series := range config.Series {
		x, y, err := categorySeries(f, config, series.Category)
		if err != nil {
			return err
		}
		err = fig.AddLine(Line{Name: series.Category, X: x, Y: y, Color: series.Color, Width: config.LineWidth, Step: true})
		if err != nil {
			return err
		}
	}

	fig.RemoveLegend()
	for _, series := range config.Series {
		fig.AddText(Text{
			Body:     series.Label,
			Position: Point{X: TimeX(series.LabelDate), Y: series.LabelY},
			Color:    series.Color,
			FontSize: config.LabelFontSize,
		})
	}

	fig.AddVLine(VLine{X: TimeX(config.PolicyDate), Color: config.PolicyColor, Width: 2})
	fig.AddText(Text{
		Body:     config.PolicyLabel,
		Position: Point{X: TimeX(config.PolicyLabelDate), Y: config.PolicyLabelY},
		Color:    config.PolicyColor,
		FontSize: config.ReferenceFontSize,
	})

	if config.NormLabelY != nil {
		fig.AddHLine(HLine{
			Y:     1,
			XMin:  TimeX(config.NormStart),
			XMax:  TimeX(config.NormEnd),
			Color: config.NormColor,
			Width: config.NormLineWidth,
		})
		fig.AddText(Text{
			Body:     config.NormLabel,
			Position: Point{X: TimeX(config.NormLabelDate), Y: *config.NormLabelY},
			Color:    config.NormColor,
			FontSize: config.ReferenceFontSize,
		})
	}

	fig.HideXLabel()

	if config.YLimits != nil {
		return fig.SetYLimits(config.YLimits[0], config.YLimits[1])
	}
	return nil
}

// categorySeries returns chronologically ordered dates and values of one category.
func categorySeries(f *frame.Frame, config ComparisonConfig, category string) ([]float64, []float64, error) {
	rows := f.Filter(func(r frame.Row) bool { return r.String(config.FactorColumn) == category })

	type point struct {
		at    time.Time
		value float64
	}
	points := make([]point, 0, rows.Len())
	values, err := rows.Floats(config.ValueColumn)
	if err != nil {
		return nil, nil, err
	}
	dates, err := rows.Column(config.DateColumn)
	if err != nil {
		return nil, nil, err
	}
	for i, d := range dates {
		at, err := frame.ToTime(d)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "column %q", config.DateColumn)
		}
		points = append(points, point{at: at, value: values[i]})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].at.Before(points[j].at) })

	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i], y[i] = TimeX(p.at), p.value
	}
	return x, y, nil
}
