package visualization

import (
	"fmt"
	"io"
)

// List is a model for data.
type List struct {
	elements []string
	label    string
}

// NewList creates new model of data representation.
func NewList(elements []string, label string) *List {
	return &List{
		elements,
		label,
	}
}

// Print prints elements from list, one per line. Empty list prints "none".
func (list *List) Print(w io.Writer) {
	if len(list.elements) == 0 {
		fmt.Fprintln(w, list.label+"none")
		return
	}
	for _, value := range list.elements {
		fmt.Fprintln(w, list.label+value)
	}
}
