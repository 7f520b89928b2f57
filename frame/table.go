// Package frame implements rtab's Table: an immutable, positionally-aligned
// collection of named columns backed by an Apache Arrow record batch, with
// R-style dual-axis selection.
package frame

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/go-rtab/rtab/errors"
	"github.com/go-rtab/rtab/selection"
)

// Table is an ordered sequence of named columns of equal length, optionally
// carrying one name per row. A Table never mutates after construction and is
// safe for concurrent use.
type Table struct {
	rec      arrow.Record
	rowNames []string
}

// FromRecord wraps an existing Arrow record batch in a Table, retaining it
// until Release is called. rowNames may be nil, in which case row label
// selection is unavailable.
func FromRecord(rec arrow.Record, rowNames []string) (*Table, error) {
	if rowNames != nil && int64(len(rowNames)) != rec.NumRows() {
		return nil, errors.RowNameCountError{Count: len(rowNames), Extent: int(rec.NumRows())}
	}
	rec.Retain()
	return newTable(rec, rowNames), nil
}

// newTable takes ownership of rec
func newTable(rec arrow.Record, rowNames []string) *Table {
	return &Table{rec: rec, rowNames: rowNames}
}

// NumRows returns the number of rows in this Table
func (t *Table) NumRows() int {
	return int(t.rec.NumRows())
}

// NumCols returns the number of columns in this Table
func (t *Table) NumCols() int {
	return int(t.rec.NumCols())
}

// ColumnNames returns the names of this Table's columns, in column order
func (t *Table) ColumnNames() []string {
	names := make([]string, t.NumCols())
	for i, field := range t.rec.Schema().Fields() {
		names[i] = field.Name
	}
	return names
}

// RowNames returns a copy of this Table's row names, or false if it has none
func (t *Table) RowNames() ([]string, bool) {
	if t.rowNames == nil {
		return nil, false
	}
	names := make([]string, len(t.rowNames))
	copy(names, t.rowNames)
	return names, true
}

// Col returns the column with the given name. Lookup is by name, never by
// dynamic attribute, so column names cannot collide with Table's own methods.
func (t *Table) Col(name string) (*Column, error) {
	indices := t.rec.Schema().FieldIndices(name)
	if len(indices) == 0 {
		return nil, errors.UnknownLabelError{Axis: selection.ColumnAxis, Name: name}
	}
	return t.ColAt(indices[0])
}

// ColAt returns the column at the given zero-based position
func (t *Table) ColAt(i int) (*Column, error) {
	if i < 0 || i >= t.NumCols() {
		return nil, errors.PositionOutOfRangeError{Axis: selection.ColumnAxis, Position: i, Extent: t.NumCols()}
	}
	return &Column{name: t.rec.Schema().Field(i).Name, arr: t.rec.Column(i)}, nil
}

// Record returns the underlying Arrow record batch. Callers must not mutate
// or release it; use Release on the Table instead.
func (t *Table) Record() arrow.Record {
	return t.rec
}

// Equals returns true iff this and another Table hold equal column names,
// row names, shapes and cell values
func (t *Table) Equals(other *Table) bool {
	if other == nil {
		return false
	}
	if t.NumRows() != other.NumRows() || t.NumCols() != other.NumCols() {
		return false
	}
	if (t.rowNames == nil) != (other.rowNames == nil) {
		return false
	}
	for i := range t.rowNames {
		if t.rowNames[i] != other.rowNames[i] {
			return false
		}
	}
	for i := 0; i < t.NumCols(); i++ {
		if t.rec.Schema().Field(i).Name != other.rec.Schema().Field(i).Name {
			return false
		}
		if !array.Equal(t.rec.Column(i), other.rec.Column(i)) {
			return false
		}
	}
	return true
}

// ToString returns a string representation of this Table
func (t *Table) ToString() string {
	var res strings.Builder
	w := tabwriter.NewWriter(&res, 0, 0, 2, ' ', 0)
	header := ""
	if t.rowNames != nil {
		header = "\t"
	}
	fmt.Fprintf(w, "%s%s\n", header, strings.Join(t.ColumnNames(), "\t"))
	for i := 0; i < t.NumRows(); i++ {
		cells := make([]string, 0, t.NumCols()+1)
		if t.rowNames != nil {
			cells = append(cells, t.rowNames[i])
		}
		for j := 0; j < t.NumCols(); j++ {
			col := t.rec.Column(j)
			if col.IsNull(i) {
				cells = append(cells, "")
			} else {
				cells = append(cells, col.ValueStr(i))
			}
		}
		fmt.Fprintf(w, "%s\n", strings.Join(cells, "\t"))
	}
	w.Flush()
	return res.String()
}

// Release releases this Table's hold on its underlying Arrow memory. The
// Table must not be used afterwards.
func (t *Table) Release() {
	t.rec.Release()
}
