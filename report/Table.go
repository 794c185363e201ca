// Package report formats the results of the solvers for terminals.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table formats columnar output using tabwriter.
type Table struct {
	w             *tabwriter.Writer
	headers       []string
	headerWritten bool
}

// NewTable creates a table that writes to w with the given column
// headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// AddRow appends a data row. Extra values beyond the header count are
// ignored; missing values are filled with empty strings.
func (t *Table) AddRow(values ...string) {
	t.writeHeader()

	cells := make([]string, len(t.headers))
	copy(cells, values)
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

// Render flushes the table. It must be called after all AddRow calls.
func (t *Table) Render() error {
	t.writeHeader()
	return t.w.Flush()
}

func (t *Table) writeHeader() {
	if t.headerWritten {
		return
	}
	t.headerWritten = true

	fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
	separators := make([]string, len(t.headers))
	for i, h := range t.headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(t.w, strings.Join(separators, "\t"))
}
