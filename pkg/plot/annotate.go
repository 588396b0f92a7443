package plot

import (
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/calendar"
)

// ArrowStyle of an annotation.
type ArrowStyle string

const (
	// ArrowHead draws a line ending with an open arrow head at the annotated point.
	ArrowHead ArrowStyle = "->"
	// ArrowLine draws a plain line.
	ArrowLine ArrowStyle = "-"
)

// annotationFontSize is the size of day of year annotations.
const annotationFontSize = 16

// Annotation points at a data position with a text placed at an offset from it.
type Annotation struct {
	Text   string
	Target Point
	// Offset of the text from the target in points.
	Offset   Point
	Arrow    ArrowStyle
	FontSize float64
}

// Annotate draws an annotation. Missing arrow style and size default to ArrowHead and 16pt.
func (f *Figure) Annotate(annotation Annotation) {
	if annotation.Arrow == "" {
		annotation.Arrow = ArrowHead
	}
	if annotation.FontSize == 0 {
		annotation.FontSize = annotationFontSize
	}
	f.annotations = append(f.annotations, annotation)
}

// Annotations returns drawn annotations.
func (f *Figure) Annotations() []Annotation {
	return f.annotations
}

// AnnotateYear annotates a day of year plot at given month and day.
// The x position is the day of year in the reference leap year, the y position is the series value
// for that day. Adjust shifts the annotated point in data units.
// A day missing from the series is an error and nothing is drawn.
func AnnotateYear(fig *Figure, series *calendar.DailySeries, month time.Month, day int, text string, offset, adjust Point) error {
	doy, err := calendar.DayOfYear(month, day)
	if err != nil {
		return err
	}
	value, err := series.Lookup(calendar.MonthDay{Month: month, Day: day})
	if err != nil {
		return err
	}

	fig.Annotate(Annotation{
		Text:   text,
		Target: Point{X: float64(doy) + adjust.X, Y: value + adjust.Y},
		Offset: offset,
	})
	return nil
}
