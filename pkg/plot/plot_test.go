package plot

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/calendar"
	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func smallStyle() Style {
	style := DefaultStyle()
	style.DPI = 30
	return style
}

// firstQuarter has one value per day from January 1 to March 31 of the reference year.
func firstQuarter() *calendar.DailySeries {
	keys := []calendar.MonthDay{}
	values := []float64{}
	for t := time.Date(calendar.ReferenceYear, 1, 1, 0, 0, 0, 0, time.UTC); t.Month() < time.April; t = t.AddDate(0, 0, 1) {
		keys = append(keys, calendar.NewMonthDay(t))
		values = append(values, float64(t.YearDay()))
	}
	series, err := calendar.NewDailySeries("crashes", keys, values)
	if err != nil {
		panic(err)
	}
	return series
}

func makeTotals() *frame.Frame {
	rows := [][]interface{}{}
	for _, month := range []time.Month{time.April, time.January, time.March, time.February} {
		at := day(2020, month, 1)
		rows = append(rows,
			[]interface{}{"ford", at, float64(month)},
			[]interface{}{"toyota", at, float64(10 - month)},
			[]interface{}{"honda", at, 1.0},
		)
	}
	f, err := frame.New([]string{"vehicle_make", "collision_date", "total"}, rows)
	if err != nil {
		panic(err)
	}
	return f
}

func TestStyle(t *testing.T) {
	Convey("Default style", t, func() {
		style := DefaultStyle()

		Convey("Is 12x7 inches at 300 DPI", func() {
			So(style.Width, ShouldEqual, 12.0)
			So(style.Height, ShouldEqual, 7.0)
			So(style.DPI, ShouldEqual, 300.0)
			width, height := style.PixelSize()
			So(width, ShouldEqual, 3600)
			So(height, ShouldEqual, 2100)
		})

		Convey("Has growing font sizes", func() {
			So(style.Fonts.Small, ShouldEqual, 12.0)
			So(style.Fonts.Medium, ShouldEqual, 16.0)
			So(style.Fonts.Large, ShouldEqual, 20.0)
			So(style.Fonts.Huge, ShouldEqual, 28.0)
		})

		Convey("Has an opaque white legend with black frame", func() {
			So(style.Legend.Frame, ShouldBeTrue)
			So(style.legendFill(), ShouldResemble, White)
			So(style.Legend.EdgeColor, ShouldResemble, Black)
		})
	})
}

func TestFigure(t *testing.T) {
	Convey("When creating a figure", t, func() {
		fig := NewFigure(DefaultStyle(), Labels{Title: "Crashes", YLabel: "count"})

		Convey("Background follows axes color", func() {
			So(fig.Background(), ShouldResemble, DefaultStyle().AxesColor)
		})

		Convey("Empty labels stay unset", func() {
			So(fig.Labels().XLabel, ShouldBeEmpty)
			So(fig.XLabelShown(), ShouldBeFalse)
		})

		Convey("Lines with mismatched lengths are rejected", func() {
			err := fig.AddLine(Line{Name: "a", X: []float64{1, 2}, Y: []float64{1}})
			So(err, ShouldNotBeNil)
			So(fig.Lines(), ShouldBeEmpty)
			So(fig.Legend(), ShouldBeNil)
		})

		Convey("Named lines get legend entries", func() {
			So(fig.AddLine(Line{Name: "a", X: []float64{1}, Y: []float64{1}, Color: Red}), ShouldBeNil)
			So(fig.AddLine(Line{X: []float64{1}, Y: []float64{2}}), ShouldBeNil)
			So(fig.Lines()[0].Width, ShouldEqual, 2.0)
			So(fig.Legend().Entries(), ShouldResemble, []LegendEntry{{Label: "a", Color: Red}})
		})

		Convey("Texts default to black small font", func() {
			fig.AddText(Text{Body: "note"})
			So(fig.Texts()[0].Color, ShouldResemble, Black)
			So(fig.Texts()[0].FontSize, ShouldEqual, DefaultStyle().Fonts.Small)
		})

		Convey("Y limits must be ordered", func() {
			So(fig.SetYLimits(1, 0), ShouldNotBeNil)
			_, _, ok := fig.YLimits()
			So(ok, ShouldBeFalse)

			So(fig.SetYLimits(0, 2), ShouldBeNil)
			bottom, top, ok := fig.YLimits()
			So(ok, ShouldBeTrue)
			So(bottom, ShouldEqual, 0.0)
			So(top, ShouldEqual, 2.0)
		})
	})
}

func TestDrawTextLegend(t *testing.T) {
	Convey("When replacing legend with texts", t, func() {
		fig := NewFigure(DefaultStyle(), Labels{})

		Convey("Figure without legend gives an error", func() {
			_, err := DrawTextLegend(fig, []string{"a"}, []Point{{X: 0.5, Y: 0.5}})
			So(err, ShouldEqual, ErrNoLegend)
			So(fig.Texts(), ShouldBeEmpty)
		})

		Convey("With three legend entries", func() {
			So(fig.AddLine(Line{Name: "a", X: []float64{0}, Y: []float64{1}, Color: Red}), ShouldBeNil)
			So(fig.AddLine(Line{Name: "b", X: []float64{0}, Y: []float64{2}, Color: Green}), ShouldBeNil)
			So(fig.AddLine(Line{Name: "c", X: []float64{0}, Y: []float64{3}, Color: Blue}), ShouldBeNil)

			Convey("Matching texts are drawn in entry colors", func() {
				count, err := DrawTextLegend(fig,
					[]string{"A", "B", "C"},
					[]Point{{X: 0.1, Y: 0.9}, {X: 0.1, Y: 0.8}, {X: 0.1, Y: 0.7}})
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 3)
				texts := fig.Texts()
				So(texts, ShouldHaveLength, 3)
				So(texts[1].Body, ShouldEqual, "B")
				So(texts[1].Color, ShouldResemble, Green)
				So(texts[1].Space, ShouldEqual, AxesCoords)
				So(texts[1].CenterVertically, ShouldBeTrue)
				So(texts[1].FontSize, ShouldEqual, 24.0)
				So(fig.Legend(), ShouldBeNil)
			})

			Convey("The shortest input decides how many texts are drawn", func() {
				count, err := DrawTextLegend(fig, []string{"A", "B"},
					[]Point{{X: 0.1, Y: 0.9}, {X: 0.1, Y: 0.8}, {X: 0.1, Y: 0.7}})
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 2)
				So(fig.Texts(), ShouldHaveLength, 2)
				So(fig.Texts()[0].Color, ShouldResemble, Red)
				So(fig.Legend(), ShouldBeNil)
			})
		})
	})
}

func TestDailySeriesPlot(t *testing.T) {
	Convey("When plotting the first quarter against day of year", t, func() {
		fig := NewFigure(smallStyle(), Labels{Title: "Crashes per day"})
		series := firstQuarter()
		So(PlotDailySeries(fig, series, Blue), ShouldBeNil)

		Convey("Days are placed at their day of year", func() {
			line := fig.Lines()[0]
			So(line.X, ShouldHaveLength, 91)
			So(line.X[0], ShouldEqual, 1.0)
			So(line.X[60], ShouldEqual, 61.0)
			So(line.Name, ShouldEqual, "crashes")
		})

		Convey("Month names sit between month starts", func() {
			labels := map[string]float64{}
			for _, tick := range fig.XTicks() {
				if tick.Label != "" {
					labels[tick.Label] = tick.Value
				}
			}
			So(labels, ShouldResemble, map[string]float64{"Jan": 16.5, "Feb": 46.5})
			So(fig.xGrid, ShouldResemble, []float64{1, 32, 61})
		})

		Convey("Ticks cover every drawn day", func() {
			ticks := fig.XTicks()
			So(ticks[0].Value, ShouldEqual, 1.0)
			So(ticks[len(ticks)-1].Value, ShouldEqual, 91.0)
		})

		Convey("Days can be annotated", func() {
			err := AnnotateYear(fig, series, time.March, 1, "March", Point{X: 10, Y: 20}, Point{Y: 0.5})
			So(err, ShouldBeNil)
			annotation := fig.Annotations()[0]
			So(annotation.Target, ShouldResemble, Point{X: 61, Y: 61.5})
			So(annotation.Offset, ShouldResemble, Point{X: 10, Y: 20})
			So(annotation.Arrow, ShouldEqual, ArrowHead)
			So(annotation.FontSize, ShouldEqual, 16.0)
		})

		Convey("Days missing from the series are not annotated", func() {
			err := AnnotateYear(fig, series, time.July, 4, "Independence Day", Point{}, Point{})
			So(errors.Cause(err), ShouldEqual, calendar.ErrKeyNotFound)
			So(fig.Annotations(), ShouldBeEmpty)
		})

		Convey("Figure renders as PNG", func() {
			buffer := &bytes.Buffer{}
			So(fig.Render(buffer), ShouldBeNil)
			So(bytes.HasPrefix(buffer.Bytes(), pngSignature), ShouldBeTrue)
		})
	})
}

func TestComparisonPlot(t *testing.T) {
	Convey("When comparing Ford and Toyota", t, func() {
		fig := NewFigure(smallStyle(), Labels{Title: "Normalized crashes", XLabel: "date", YLabel: "normalized"})
		config := DefaultComparisonConfig()
		normY := 1.2
		config.NormLabelY = &normY
		config.YLimits = &[2]float64{0, 10}

		So(PlotComparison(fig, makeTotals(), config), ShouldBeNil)

		Convey("Only configured categories are drawn as step lines", func() {
			lines := fig.Lines()
			So(lines, ShouldHaveLength, 2)
			So(lines[0].Name, ShouldEqual, "toyota")
			So(lines[0].Color, ShouldResemble, Orange)
			So(lines[1].Name, ShouldEqual, "ford")
			So(lines[1].Step, ShouldBeTrue)
		})

		Convey("Lines follow dates", func() {
			ford := fig.Lines()[1]
			So(ford.X[0], ShouldEqual, TimeX(day(2020, time.January, 1)))
			So(ford.Y, ShouldResemble, []float64{1, 2, 3, 4})
		})

		Convey("Legend is replaced by labels and reference markers", func() {
			So(fig.Legend(), ShouldBeNil)
			texts := fig.Texts()
			So(texts, ShouldHaveLength, 4)
			So(texts[0].Body, ShouldEqual, "Toyota")
			So(texts[2].Body, ShouldEqual, "Stay-at-home Order")
			So(texts[3].Position.Y, ShouldEqual, 1.2)
			So(fig.VLines()[0].X, ShouldEqual, TimeX(day(2020, time.March, 19)))
			So(fig.HLines()[0].Y, ShouldEqual, 1.0)
		})

		Convey("X label is hidden and y limits applied", func() {
			So(fig.XLabelShown(), ShouldBeFalse)
			bottom, top, ok := fig.YLimits()
			So(ok, ShouldBeTrue)
			So(bottom, ShouldEqual, 0.0)
			So(top, ShouldEqual, 10.0)
		})

		Convey("Figure can be saved", func() {
			dir, err := ioutil.TempDir("", "plot")
			So(err, ShouldBeNil)
			defer os.RemoveAll(dir)

			path := filepath.Join(dir, "comparison.png")
			So(fig.Save(path), ShouldBeNil)
			content, err := ioutil.ReadFile(path)
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(content, pngSignature), ShouldBeTrue)
		})
	})

	Convey("Comparison without normalization label draws no window", t, func() {
		fig := NewFigure(smallStyle(), Labels{})
		So(PlotComparison(fig, makeTotals(), DefaultComparisonConfig()), ShouldBeNil)
		So(fig.HLines(), ShouldBeEmpty)
		So(fig.Texts(), ShouldHaveLength, 3)
	})

	Convey("Comparison of a frame without needed columns fails", t, func() {
		f, err := frame.New([]string{"vehicle_make"}, [][]interface{}{{"ford"}})
		So(err, ShouldBeNil)
		So(PlotComparison(NewFigure(smallStyle(), Labels{}), f, DefaultComparisonConfig()), ShouldNotBeNil)
	})
}

func TestRenderEmptyFigure(t *testing.T) {
	Convey("Figure without lines cannot be rendered", t, func() {
		err := NewFigure(smallStyle(), Labels{}).Render(&bytes.Buffer{})
		So(err, ShouldEqual, ErrEmptyFigure)
	})
}

func TestStepped(t *testing.T) {
	Convey("Steps hold each value until the next x", t, func() {
		x, y := stepped([]float64{1, 2, 3}, []float64{10, 20, 30})
		So(x, ShouldResemble, []float64{1, 2, 2, 3, 3})
		So(y, ShouldResemble, []float64{10, 10, 20, 20, 30})
	})
}
