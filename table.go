package sorer

import "fmt"

// Table is the parsed, columnar result of FromFile: a fixed Schema plus one
// Column per schema entry, all of equal length (§4.G).
type Table struct {
	schema  Schema
	columns []*Column
}

func newTable(schema Schema) *Table {
	cols := make([]*Column, len(schema))
	for i, t := range schema {
		cols[i] = newColumn(t)
	}
	return &Table{schema: schema, columns: cols}
}

// Schema returns the table's column types.
func (t *Table) Schema() Schema {
	return t.schema
}

// NumCols reports the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// NumRows reports the number of rows; 0 for a schema with no columns.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Get returns the value at (col, row). Like the original implementation's
// indexing, it panics on an out-of-range col or row: this is a programmer
// error, not a data error, and is not expected to be recovered from (§7).
func (t *Table) Get(col, row int) Data {
	if col < 0 || col >= len(t.columns) {
		panic(fmt.Sprintf("sorer: column index %d out of range [0,%d)", col, len(t.columns)))
	}
	if row < 0 || row >= t.columns[col].Len() {
		panic(fmt.Sprintf("sorer: row index %d out of range [0,%d)", row, t.columns[col].Len()))
	}
	return t.columns[col].get(row)
}

// appendPartial concatenates a per-worker partial table onto t, preserving
// worker order. Called only by the single goroutine that merges chunk
// results after errgroup.Wait returns, so it needs no locking of its own.
func (t *Table) appendPartial(p *Table) {
	for i, c := range t.columns {
		c.appendColumn(p.columns[i])
	}
}
