package plot

import (
	"sort"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/calendar"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PlotDailySeries draws series against day of year with month names between month boundaries.
// Keys of the series are placed at their day of year in the reference leap year.
func PlotDailySeries(fig *Figure, series *calendar.DailySeries, color drawing.Color) error {
	keys := series.Keys()
	x := make([]float64, len(keys))
	for i, key := range keys {
		doy, err := calendar.DayOfYear(key.Month, key.Day)
		if err != nil {
			return errors.Wrapf(err, "series %q", series.Name())
		}
		x[i] = float64(doy)
	}

	if err := fig.AddLine(Line{Name: series.Name(), X: x, Y: series.Values(), Color: color}); err != nil {
		return err
	}

	majors, minors := calendar.MonthStarts(keys)
	ticks := []Tick{}
	grid := []float64{}
	for _, major := range majors {
		ticks = append(ticks, Tick{Value: x[major]})
		grid = append(grid, x[major])
	}
	// Minors are midpoints of positions, labels go to the midpoints of days of year.
	for i := range minors {
		month := keys[majors[i]].Month
		ticks = append(ticks, Tick{Value: (x[majors[i]] + x[majors[i+1]]) / 2, Label: month.String()[:3]})
	}
	if len(ticks) > 1 {
		sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
		// Ticks decide x range, keep days outside of month boundaries visible.
		if first := x[0]; first < ticks[0].Value {
			ticks = append([]Tick{{Value: first}}, ticks...)
		}
		if last := x[len(x)-1]; last > ticks[len(ticks)-1].Value {
			ticks = append(ticks, Tick{Value: last})
		}
		fig.SetXTicks(ticks, grid)
	}
	return nil
}
