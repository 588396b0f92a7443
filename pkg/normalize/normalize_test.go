package normalize

import (
	"testing"
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

// makesFrame returns ten monthly ford totals 2, 4, ..., 20 from 2019-02, so the first five
// fall before the default cutoff, interleaved with toyota and honda rows.
func makesFrame() *frame.Frame {
	rows := [][]interface{}{}
	for i := 0; i < 10; i++ {
		day := time.Date(2019, time.Month(2+i), 1, 0, 0, 0, 0, time.UTC)
		rows = append(rows,
			[]interface{}{"ford", day, int64(2 * (i + 1))},
			[]interface{}{"toyota", day, 3.0},
			[]interface{}{"honda", day, 7.0},
		)
	}
	f, err := frame.New([]string{"vehicle_make", "collision_date", "total"}, rows)
	if err != nil {
		panic(err)
	}
	if err := f.SetIndex("collision_date"); err != nil {
		panic(err)
	}
	return f
}

func valuesOf(f *frame.Frame, category string, early bool) []float64 {
	selected := f.Filter(func(r frame.Row) bool {
		return r.String("vehicle_make") == category && r.Before(DefaultConfig().Cutoff) == early
	})
	values, err := selected.Floats("total")
	if err != nil {
		panic(err)
	}
	return values
}

func TestNormalize(t *testing.T) {
	Convey("When normalizing a frame with ford and toyota totals", t, func() {
		f := makesFrame()

		baselines, err := Baselines(f, DefaultConfig())
		So(err, ShouldBeNil)
		So(baselines["ford"], ShouldEqual, 6.0)
		So(baselines["toyota"], ShouldEqual, 3.0)

		normalized, err := Normalize(f, DefaultConfig())
		So(err, ShouldBeNil)

		Convey("Early ford totals average to 1", func() {
			mean, err := stats.Mean(valuesOf(normalized, "ford", true))
			So(err, ShouldBeNil)
			So(mean, ShouldAlmostEqual, 1.0)
		})

		Convey("Late ford totals are divided by the same baseline", func() {
			So(valuesOf(normalized, "ford", false), ShouldResemble, []float64{2, 14.0 / 6, 16.0 / 6, 3, 20.0 / 6})
		})

		Convey("Toyota totals are divided by the toyota baseline", func() {
			for _, v := range valuesOf(normalized, "toyota", false) {
				So(v, ShouldAlmostEqual, 1.0)
			}
		})

		Convey("Other categories are untouched", func() {
			So(valuesOf(normalized, "honda", true), ShouldResemble, []float64{7, 7, 7, 7, 7})
		})

		Convey("Input frame is not modified", func() {
			So(valuesOf(f, "ford", true), ShouldResemble, []float64{2, 4, 6, 8, 10})
		})
	})

	Convey("When factor column is customized it is used consistently", t, func() {
		f, err := frame.New([]string{"brand", "total"}, [][]interface{}{
			{"ford", 4.0}, {"toyota", 2.0},
		})
		So(err, ShouldBeNil)
		So(f.SetIndex("total"), ShouldNotBeNil)

		f, err = frame.New([]string{"brand", "day", "total"}, [][]interface{}{
			{"ford", "2019-01-01", 4.0}, {"toyota", "2019-01-01", 2.0},
		})
		So(err, ShouldBeNil)
		So(f.SetIndex("day"), ShouldBeNil)

		config := DefaultConfig()
		config.FactorColumn = "brand"
		normalized, err := Normalize(f, config)
		So(err, ShouldBeNil)

		totals, err := normalized.Floats("total")
		So(err, ShouldBeNil)
		So(totals, ShouldResemble, []float64{1, 1})
	})

	Convey("When a category is listed more than once it is divided once", t, func() {
		config := DefaultConfig()
		config.Categories = []string{"ford", "ford", "toyota", "ford"}
		normalized, err := Normalize(makesFrame(), config)
		So(err, ShouldBeNil)

		mean, err := stats.Mean(valuesOf(normalized, "ford", true))
		So(err, ShouldBeNil)
		So(mean, ShouldAlmostEqual, 1.0)
		for _, v := range valuesOf(normalized, "toyota", true) {
			So(v, ShouldAlmostEqual, 1.0)
		}
	})

	Convey("When some totals are missing", t, func() {
		f, err := frame.New([]string{"vehicle_make", "collision_date", "total"}, [][]interface{}{
			{"ford", "2019-01-01", 2.0},
			{"ford", "2019-02-01", nil},
			{"ford", "2019-03-01", 6.0},
			{"ford", "2019-08-01", 8.0},
		})
		So(err, ShouldBeNil)
		So(f.SetIndex("collision_date"), ShouldBeNil)

		config := DefaultConfig()
		config.Categories = []string{"ford"}
		baselines, err := Baselines(f, config)
		So(err, ShouldBeNil)
		So(baselines["ford"], ShouldEqual, 4.0)

		normalized, err := Normalize(f, config)
		So(err, ShouldBeNil)
		totals, err := normalized.Column("total")
		So(err, ShouldBeNil)
		So(totals, ShouldResemble, []interface{}{0.5, nil, 1.5, 2.0})
	})

	Convey("When a category has no rows before cutoff", t, func() {
		config := DefaultConfig()
		config.Cutoff = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
		_, err := Normalize(makesFrame(), config)
		So(errors.Cause(err), ShouldEqual, ErrEmptyBaseline)
	})

	Convey("When frame has no index", t, func() {
		f, err := frame.New([]string{"vehicle_make", "total"}, [][]interface{}{{"ford", 1.0}})
		So(err, ShouldBeNil)
		_, err = Normalize(f, DefaultConfig())
		So(errors.Cause(err), ShouldEqual, frame.ErrNoIndex)
	})

	Convey("When value column is missing", t, func() {
		config := DefaultConfig()
		config.ValueColumn = "count"
		_, err := Normalize(makesFrame(), config)
		So(errors.Cause(err), ShouldEqual, frame.ErrColumnNotFound)
	})
}
