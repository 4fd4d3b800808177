package executor

import (
	"iter"
	"strings"

	messages "github.com/cucumber/messages/go/v21"
)

// Record is one data row of a Table, addressed by header name.
type Record struct {
	header []string
	cells  []string
}

// Get returns the cell under the named column, matched case-insensitively.
// Missing columns and short rows yield "".
func (r Record) Get(column string) string {
	for i, h := range r.header {
		if strings.EqualFold(h, column) && i < len(r.cells) {
			return r.cells[i]
		}
	}
	return ""
}

// Values returns a copy of the row's cells.
func (r Record) Values() []string {
	return append([]string(nil), r.cells...)
}

// Table is the data table attached to a step. The first row is the header.
type Table struct {
	rows [][]string
}

// NewTable copies data into a Table.
func NewTable(data [][]string) Table {
	rows := make([][]string, len(data))
	for i, row := range data {
		rows[i] = append([]string(nil), row...)
	}
	return Table{rows: rows}
}

// TableFromPickle converts a pickle step argument. A step without a data
// table yields the empty Table.
func TableFromPickle(dt *messages.PickleTable) Table {
	if dt == nil {
		return Table{}
	}
	data := make([][]string, len(dt.Rows))
	for i, row := range dt.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.Value
		}
		data[i] = cells
	}
	return Table{rows: data}
}

// Header returns the first row.
func (t Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return append([]string(nil), t.rows[0]...)
}

// Len is the number of rows, header included.
func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of every row, header included.
func (t Table) Rows() [][]string {
	return NewTable(t.rows).rows
}

// Records iterates over the data rows (the header excluded), indexed from 0.
func (t Table) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if len(t.rows) == 0 {
			return
		}
		header := t.rows[0]
		for i, cells := range t.rows[1:] {
			if !yield(i, Record{header: header, cells: cells}) {
				return
			}
		}
	}
}
