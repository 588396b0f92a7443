package plot

import (
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// CoordSpace tells how a position is interpreted.
type CoordSpace int

const (
	// DataCoords are values on the axes.
	DataCoords CoordSpace = iota
	// AxesCoords are fractions of the plotting area, (0, 0) is bottom left and (1, 1) top right.
	AxesCoords
)

// Point is a position or an offset.
type Point struct {
	X, Y float64
}

// TimeX converts a moment to x value of a figure with time axis.
func TimeX(t time.Time) float64 {
	return float64(t.UnixNano())
}

// Labels are optional texts of a figure. Empty text leaves the label unset.
type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

// Line is a drawn data series.
type Line struct {
	Name  string
	X     []float64
	Y     []float64
	Color drawing.Color
	Width float64
	// Step draws the line as steps, each value held until the next x (steps-post).
	Step bool
}

// Text is a free text drawn on the figure.
type Text struct {
	Body     string
	Position Point
	Space    CoordSpace
	Color    drawing.Color
	FontSize float64
	// CenterVertically aligns the middle of the text with Position instead of its baseline.
	CenterVertically bool
}

// VLine is a vertical reference line spanning the whole plotting area.
type VLine struct {
	X     float64
	Color drawing.Color
	Width float64
}

// HLine is a horizontal reference segment between XMin and XMax.
type HLine struct {
	Y          float64
	XMin, XMax float64
	Color      drawing.Color
	Width      float64
}

// Tick is a labeled position on x axis.
type Tick struct {
	Value float64
	Label string
}

// Figure is a single pane chart. Drawing calls mutate it in place, Render exports it.
type Figure struct {
	style       Style
	labels      Labels
	background  drawing.Color
	timeAxis    bool
	lines       []Line
	legend      *Legend
	texts       []Text
	annotations []Annotation
	vlines      []VLine
	hlines      []HLine
	xTicks      []Tick
	xGrid       []float64
	yLimits     *[2]float64
	xLabelShown bool
}

// NewFigure creates a blank figure with given style and labels.
// Figure background takes the axes color, so exported images have no transparent margins.
func NewFigure(style Style, labels Labels) *Figure {
	return &Figure{
		style:       style,
		labels:      labels,
		background:  style.AxesColor,
		xLabelShown: true,
	}
}

// Style returns figure style.
func (f *Figure) Style() Style {
	return f.style
}

// Labels returns figure labels.
func (f *Figure) Labels() Labels {
	return f.labels
}

// Background returns figure background color.
func (f *Figure) Background() drawing.Color {
	return f.background
}

// SetTimeAxis marks x values as moments (see TimeX).
func (f *Figure) SetTimeAxis(timeAxis bool) {
	f.timeAxis = timeAxis
}

// AddLine draws a series. Named series get a legend entry.
func (f *Figure) AddLine(line Line) error {
	if len(line.X) != len(line.Y) {
		return errors.Errorf("line %q has %d x values and %d y values", line.Name, len(line.X), len(line.Y))
	}
	if line.Width == 0 {
		line.Width = 2
	}
	f.lines = append(f.lines, line)

	if line.Name != "" {
		if f.legend == nil {
			f.legend = &Legend{}
		}
		f.legend.entries = append(f.legend.entries, LegendEntry{Label: line.Name, Color: line.Color})
	}
	return nil
}

// Lines returns drawn series.
func (f *Figure) Lines() []Line {
	return f.lines
}

// AddText draws free text. Texts without color or size use black and the small font.
func (f *Figure) AddText(text Text) {
	if text.Color == (drawing.Color{}) {
		text.Color = Black
	}
	if text.FontSize == 0 {
		text.FontSize = f.style.Fonts.Small
	}
	f.texts = append(f.texts, text)
}

// Texts returns drawn free texts.
func (f *Figure) Texts() []Text {
	return f.texts
}

// AddVLine draws vertical reference line.
func (f *Figure) AddVLine(line VLine) {
	f.vlines = append(f.vlines, line)
}

// VLines returns vertical reference lines.
func (f *Figure) VLines() []VLine {
	return f.vlines
}

// AddHLine draws horizontal reference segment.
func (f *Figure) AddHLine(line HLine) {
	f.hlines = append(f.hlines, line)
}

// HLines returns horizontal reference segments.
func (f *Figure) HLines() []HLine {
	return f.hlines
}

// SetXTicks replaces automatic x ticks. Grid lines are drawn at grid positions.
func (f *Figure) SetXTicks(ticks []Tick, grid []float64) {
	f.xTicks = ticks
	f.xGrid = grid
}

// XTicks returns explicit x ticks.
func (f *Figure) XTicks() []Tick {
	return f.xTicks
}

// SetYLimits fixes y axis range.
func (f *Figure) SetYLimits(bottom, top float64) error {
	if bottom >= top {
		return errors.Errorf("invalid y limits [%f, %f]", bottom, top)
	}
	f.yLimits = &[2]float64{bottom, top}
	return nil
}

// YLimits returns fixed y axis range, if any.
func (f *Figure) YLimits() (bottom, top float64, ok bool) {
	if f.yLimits == nil {
		return 0, 0, false
	}
	return f.yLimits[0], f.yLimits[1], true
}

// HideXLabel hides x axis label text.
func (f *Figure) HideXLabel() {
	f.xLabelShown = false
}

// XLabelShown tells whether x axis label is drawn.
func (f *Figure) XLabelShown() bool {
	return f.xLabelShown && f.labels.XLabel != ""
}
