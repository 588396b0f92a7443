package visualization

import (
	"io"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is number of decimal places printed for float cells.
const DefaultPrecision = 3

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// FromFrame prepares frame content for drawing. Float cells are rounded to given number of decimal places.
func FromFrame(f *frame.Frame, precision int32) *Table {
	data := [][]string{}
	for _, row := range f.Rows() {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = formatCell(value, precision)
		}
		data = append(data, cells)
	}
	return NewTable(f.Columns(), data)
}

func formatCell(value interface{}, precision int32) string {
	switch typed := value.(type) {
	case nil:
		return "NULL"
	case float64:
		return decimal.NewFromFloat(typed).Round(precision).String()
	case float32:
		return decimal.NewFromFloat32(typed).Round(precision).String()
	}
	return frame.ToString(value)
}

// Headers returns table headers.
func (t *Table) Headers() []string {
	return t.headers
}

// Data returns table rows.
func (t *Table) Data() [][]string {
	return t.data
}

// Draw draws a table with headers and data rows.
func (t *Table) Draw(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(t.headers)
	output.SetAutoFormatHeaders(false)
	output.AppendBulk(t.data)
	output.Render()
}
