package plot

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Colors used by default figures. Line colors follow the tab10 palette.
var (
	White  = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	Black  = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	Red    = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	Blue   = drawing.ColorFromHex("1f77b4")
	Orange = drawing.ColorFromHex("ff7f0e")
	Green  = drawing.ColorFromHex("2ca02c")
)

// FontSizes are four tiers of text size in points.
type FontSizes struct {
	// Small is the base size of free text.
	Small float64
	// Medium is used for tick labels.
	Medium float64
	// Large is used for axis labels and legend.
	Large float64
	// Huge is used for titles.
	Huge float64
}

// LegendStyle describes legend box chrome.
type LegendStyle struct {
	Frame      bool
	FrameAlpha float64
	FaceColor  drawing.Color
	EdgeColor  drawing.Color
}

// Style holds presentation settings of a figure.
// It is passed to every figure explicitly, there is no process wide style.
type Style struct {
	// Width and Height of the figure in inches.
	Width  float64
	Height float64
	// DPI of exported images.
	DPI       float64
	Fonts     FontSizes
	Legend    LegendStyle
	AxesColor drawing.Color
}

// DefaultStyle returns 12x7 inch figures exported at 300 DPI with an opaque white legend.
func DefaultStyle() Style {
	return Style{
		Width:  12,
		Height: 7,
		DPI:    300,
		Fonts: FontSizes{
			Small:  12,
			Medium: 16,
			Large:  20,
			Huge:   28,
		},
		Legend: LegendStyle{
			Frame:      true,
			FrameAlpha: 1,
			FaceColor:  White,
			EdgeColor:  Black,
		},
		AxesColor: White,
	}
}

// PixelSize returns figure size in pixels at export DPI.
func (s Style) PixelSize() (width, height int) {
	return int(s.Width * s.DPI), int(s.Height * s.DPI)
}

// pointsToPixels converts typographic points (1/72 inch) to pixels at export DPI.
func (s Style) pointsToPixels(points float64) float64 {
	return points * s.DPI / 72
}

func (s Style) legendFill() drawing.Color {
	fill := s.Legend.FaceColor
	fill.A = uint8(255 * s.Legend.FrameAlpha)
	return fill
}
