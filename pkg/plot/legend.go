package plot

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoLegend is returned when a figure has no legend to work with.
var ErrNoLegend = errors.New("figure has no legend")

// textLegendFontSize is the size of labels replacing the legend.
const textLegendFontSize = 24

// LegendEntry is a single legend swatch.
type LegendEntry struct {
	Label string
	Color drawing.Color
}

// Legend lists named series of a figure.
type Legend struct {
	entries []LegendEntry
}

// Entries returns legend entries in drawing order.
func (l *Legend) Entries() []LegendEntry {
	return l.entries
}

// Legend returns figure legend or nil when it has none or it was removed.
func (f *Figure) Legend() *Legend {
	return f.legend
}

// RemoveLegend removes legend box.
func (f *Figure) RemoveLegend() {
	f.legend = nil
}

// DrawTextLegend replaces figure legend with texts drawn in the colors of legend entries.
// Positions are in axes coordinates. Texts, positions and entries are paired in order and
// the shortest of them decides how many texts are drawn; a mismatch is logged.
// The legend is removed in any case. Returns number of drawn texts.
func DrawTextLegend(fig *Figure, texts []string, positions []Point) (int, error) {
	legend := fig.Legend()
	if legend == nil {
		return 0, ErrNoLegend
	}

	entries := legend.Entries()
	count := len(entries)
	if len(texts) < count {
		count = len(texts)
	}
	if len(positions) < count {
		count = len(positions)
	}
	if count != len(entries) || count != len(texts) || count != len(positions) {
		logrus.Warnf("legend has %d entries, got %d texts and %d positions: drawing %d",
			len(entries), len(texts), len(positions), count)
	}

	for i := 0; i < count; i++ {
		fig.AddText(Text{
			Body:             texts[i],
			Position:         positions[i],
			Space:            AxesCoords,
			Color:            entries[i].Color,
			FontSize:         textLegendFontSize,
			CenterVertically: true,
		})
	}

	fig.RemoveLegend()
	return count, nil
}
