package visualization

import (
	"fmt"
	"strings"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/frame"
)

// QueryMetadata describes the result of a query shown to the user.
type QueryMetadata struct {
	query   string
	rows    int
	columns []string
}

// NewQueryMetadata returns metadata of given query result.
func NewQueryMetadata(query string, f *frame.Frame) *QueryMetadata {
	return &QueryMetadata{
		query:   query,
		rows:    f.Len(),
		columns: f.Columns(),
	}
}

// String returns a printable summary of the query result.
func (metadata *QueryMetadata) String() string {
	return fmt.Sprintf("Query: %s\nRows: %d, columns: %s", metadata.query, metadata.rows, strings.Join(metadata.columns, ", "))
}
