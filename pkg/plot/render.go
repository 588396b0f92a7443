package plot

import (
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyFigure is returned when rendering a figure without any line.
var ErrEmptyFigure = errors.New("figure has no data to draw")

// margin is a fraction of data range added on both sides of automatic axis ranges.
const margin = 0.05

// axisRange maps data values to pixels the same way go-chart does for continuous ranges.
type axisRange struct {
	min, max float64
}

func (a axisRange) delta() float64 {
	return a.max - a.min
}

func (a axisRange) translate(value float64, domain int) int {
	return int(math.Ceil((value - a.min) / a.delta() * float64(domain)))
}

func (a axisRange) contains(value float64) bool {
	return value >= a.min && value <= a.max
}

func (a axisRange) continuous() *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: a.min, Max: a.max}
}

func (a axisRange) clamp(value float64) float64 {
	return math.Max(a.min, math.Min(a.max, value))
}

// extent collects min and max of values.
type extent struct {
	min, max float64
	set      bool
}

func (e *extent) add(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !e.set {
			e.min, e.max, e.set = v, v, true
			continue
		}
		e.min = math.Min(e.min, v)
		e.max = math.Max(e.max, v)
	}
}

func (e extent) withMargin() axisRange {
	if e.min == e.max {
		return axisRange{min: e.min - 1, max: e.max + 1}
	}
	pad := (e.max - e.min) * margin
	return axisRange{min: e.min - pad, max: e.max + pad}
}

// ranges computes axis ranges. Explicit x ticks and y limits win over data extent.
func (f *Figure) ranges() (x axisRange, y axisRange, err error) {
	xs, ys := &extent{}, &extent{}
	for _, line := range f.lines {
		xs.add(line.X...)
		ys.add(line.Y...)
	}
	if !xs.set {
		return x, y, ErrEmptyFigure
	}
	for _, line := range f.vlines {
		xs.add(line.X)
	}
	for _, line := range f.hlines {
		xs.add(line.XMin, line.XMax)
		ys.add(line.Y)
	}

	x = xs.withMargin()
	if len(f.xTicks) > 0 {
		ticks := &extent{}
		for _, tick := range f.xTicks {
			ticks.add(tick.Value)
		}
		x = axisRange{min: ticks.min, max: ticks.max}
		if ticks.min == ticks.max {
			x = ticks.withMargin()
		}
	}

	y = ys.withMargin()
	if bottom, top, ok := f.YLimits(); ok {
		y = axisRange{min: bottom, max: top}
	}
	return x, y, nil
}

func stepped(x, y []float64) ([]float64, []float64) {
	if len(x) < 2 {
		return x, y
	}
	sx := make([]float64, 0, 2*len(x)-1)
	sy := make([]float64, 0, 2*len(y)-1)
	for i := range x {
		if i > 0 {
			sx = append(sx, x[i])
			sy = append(sy, y[i-1])
		}
		sx = append(sx, x[i])
		sy = append(sy, y[i])
	}
	return sx, sy
}

func timeFormatter(v interface{}) string {
	if typed, ok := v.(float64); ok {
		return time.Unix(0, int64(typed)).UTC().Format("2006-01")
	}
	return ""
}

// Chart builds go-chart definition of the figure.
func (f *Figure) Chart() (chart.Chart, error) {
	xr, yr, err := f.ranges()
	if err != nil {
		return chart.Chart{}, err
	}

	width, height := f.style.PixelSize()
	fonts := f.style.Fonts
	c := chart.Chart{
		Title:      f.labels.Title,
		TitleStyle: chart.Style{FontSize: fonts.Huge},
		Width:      width,
		Height:     height,
		DPI:        f.style.DPI,
		Background: chart.Style{
			FillColor: f.background,
			Padding:   chart.Box{Top: int(f.style.pointsToPixels(fonts.Huge)) + 20, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: f.style.AxesColor},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontSize: fonts.Medium},
			NameStyle:      chart.Style{FontSize: fonts.Large},
			Range:          xr.continuous(),
			GridMajorStyle: chart.Style{StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255}, StrokeWidth: 1},
		},
		YAxis: chart.YAxis{
			Name:      f.labels.YLabel,
			Style:     chart.Style{FontSize: fonts.Medium},
			NameStyle: chart.Style{FontSize: fonts.Large},
			Range:     yr.continuous(),
		},
	}
	if f.XLabelShown() {
		c.XAxis.Name = f.labels.XLabel
	}
	if f.timeAxis {
		c.XAxis.ValueFormatter = timeFormatter
	}
	for _, tick := range f.xTicks {
		c.XAxis.Ticks = append(c.XAxis.Ticks, chart.Tick{Value: tick.Value, Label: tick.Label})
	}
	for _, grid := range f.xGrid {
		c.XAxis.GridLines = append(c.XAxis.GridLines, chart.GridLine{Value: grid})
	}

	for _, line := range f.lines {
		x, y := line.X, line.Y
		if line.Step {
			x, y = stepped(x, y)
		}
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name:    line.Name,
			Style:   chart.Style{StrokeColor: line.Color, StrokeWidth: line.Width},
			XValues: x,
			YValues: y,
		})
	}

	if f.legend != nil {
		legendStyle := chart.Style{FontSize: fonts.Large, FillColor: f.style.legendFill()}
		if f.style.Legend.Frame {
			legendStyle.StrokeColor = f.style.Legend.EdgeColor
		}
		c.Elements = append(c.Elements, chart.Legend(&c, legendStyle))
	}
	c.Elements = append(c.Elements, f.overlay(xr, yr))
	return c, nil
}

// overlay draws reference lines, texts and annotations on top of the series.
func (f *Figure) overlay(xr, yr axisRange) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		px := func(x float64) int { return canvas.Left + xr.translate(x, canvas.Width()) }
		py := func(y float64) int { return canvas.Bottom - yr.translate(y, canvas.Height()) }

		for _, line := range f.vlines {
			if !xr.contains(line.X) {
				continue
			}
			stroke(r, line.Color, line.Width, px(line.X), canvas.Top, px(line.X), canvas.Bottom)
		}
		for _, line := range f.hlines {
			if !yr.contains(line.Y) {
				continue
			}
			stroke(r, line.Color, line.Width, px(xr.clamp(line.XMin)), py(line.Y), px(xr.clamp(line.XMax)), py(line.Y))
		}

		for _, text := range f.texts {
			x, y := px(text.Position.X), py(text.Position.Y)
			if text.Space == AxesCoords {
				x = canvas.Left + int(text.Position.X*float64(canvas.Width()))
				y = canvas.Bottom - int(text.Position.Y*float64(canvas.Height()))
			}
			drawText(r, defaults, text.Body, text.Color, text.FontSize, x, y, text.CenterVertically)
		}

		for _, annotation := range f.annotations {
			f.drawAnnotation(r, defaults, annotation, px(annotation.Target.X), py(annotation.Target.Y))
		}
	}
}

func stroke(r chart.Renderer, color drawing.Color, width float64, x0, y0, x1, y1 int) {
	r.ResetStyle()
	r.SetStrokeColor(color)
	r.SetStrokeWidth(width)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

// drawText draws lines of body starting with baseline of the first line at (x, y).
func drawText(r chart.Renderer, defaults chart.Style, body string, color drawing.Color, size float64, x, y int, center bool) {
	r.ResetStyle()
	if defaults.Font != nil {
		r.SetFont(defaults.Font)
	}
	r.SetFontColor(color)
	r.SetFontSize(size)

	lines := strings.Split(body, "\n")
	lineHeight := 0
	for _, line := range lines {
		if h := r.MeasureText(line).Height(); h > lineHeight {
			lineHeight = h
		}
	}
	lineHeight = int(float64(lineHeight) * 1.2)
	if center {
		y += lineHeight * len(lines) / 2
		y -= lineHeight * (len(lines) - 1)
	}
	for i, line := range lines {
		r.Text(line, x, y+i*lineHeight)
	}
}

func (f *Figure) drawAnnotation(r chart.Renderer, defaults chart.Style, annotation Annotation, tx, ty int) {
	textX := tx + int(f.style.pointsToPixels(annotation.Offset.X))
	textY := ty - int(f.style.pointsToPixels(annotation.Offset.Y))
	drawText(r, defaults, annotation.Text, Black, annotation.FontSize, textX, textY, false)

	r.SetFontSize(annotation.FontSize)
	box := r.MeasureText(annotation.Text)
	startX := textX + box.Width()/2
	startY := textY - box.Height() - 4
	if ty > textY {
		startY = textY + 4
	}
	stroke(r, Black, 1, startX, startY, tx, ty)

	if annotation.Arrow != ArrowHead {
		return
	}
	angle := math.Atan2(float64(ty-startY), float64(tx-startX))
	head := f.style.pointsToPixels(6)
	for _, side := range []float64{-math.Pi / 7, math.Pi / 7} {
		hx := tx - int(head*math.Cos(angle+side))
		hy := ty - int(head*math.Sin(angle+side))
		stroke(r, Black, 1, tx, ty, hx, hy)
	}
}

// Render writes the figure as PNG.
func (f *Figure) Render(w io.Writer) error {
	c, err := f.Chart()
	if err != nil {
		return err
	}
	logrus.Debugf("rendering %dx%d figure %q with %d lines", c.Width, c.Height, f.labels.Title, len(c.Series))
	if err := c.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "rendering chart failed")
	}
	return nil
}

// Save renders the figure to a PNG file.
func (f *Figure) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}
	if err := f.Render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
