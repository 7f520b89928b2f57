package frame

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-rtab/rtab"
	"github.com/go-rtab/rtab/errors"
	"github.com/go-rtab/rtab/selection"
)

// Select resolves one row Selector and one column Selector against this
// Table and returns a new Table holding the selected cross product. Columns
// are resolved before rows. Selector order is preserved on both axes, and
// repeated positions repeat the corresponding row or column, except under
// Omit, which always yields ascending position order.
//
// Select always returns a *Table, even when the result collapses to a single
// column or a single cell; narrow results are unwrapped with Col, ColAt and
// Column.Value. Select never mutates the receiver, so it is safe to call
// concurrently on the same Table.
func (t *Table) Select(rowSel rtab.Selector, colSel rtab.Selector) (*Table, error) {
	if rowSel == nil {
		return nil, errors.MissingSelectorError{Axis: selection.RowAxis}
	}
	if colSel == nil {
		return nil, errors.MissingSelectorError{Axis: selection.ColumnAxis}
	}
	cols, err := selection.Resolve(colSel, t.columnAxis())
	if err != nil {
		return nil, err
	}
	rows, err := selection.Resolve(rowSel, t.rowAxis())
	if err != nil {
		return nil, err
	}
	return t.take(rows, cols)
}

// Index is the R-style calling convention for Select: exactly two selectors,
// rows then columns. Any other number of selectors is a usage error.
func (t *Table) Index(sels ...rtab.Selector) (*Table, error) {
	if len(sels) != 2 {
		return nil, errors.SelectorArityError{Supplied: len(sels)}
	}
	return t.Select(sels[0], sels[1])
}

func (t *Table) columnAxis() selection.Axis {
	return selection.Axis{
		Kind:     selection.ColumnAxis,
		Extent:   t.NumCols(),
		Names:    t.ColumnNames(),
		HasNames: true,
	}
}

func (t *Table) rowAxis() selection.Axis {
	axis := selection.Axis{Kind: selection.RowAxis, Extent: t.NumRows()}
	if t.rowNames != nil {
		axis.Names = t.rowNames
		axis.HasNames = true
	}
	return axis
}

// take materializes the cross product of the given row and column positions
// into a fresh record batch
func (t *Table) take(rows []int, cols []int) (*Table, error) {
	pool := memory.NewGoAllocator()
	schema := t.rec.Schema()
	fields := make([]arrow.Field, len(cols))
	arrays := make([]arrow.Array, len(cols))
	for i, colIdx := range cols {
		fields[i] = schema.Field(colIdx)
		builder := array.NewBuilder(pool, fields[i].Type)
		src := t.rec.Column(colIdx)
		for _, rowIdx := range rows {
			if err := appendValue(builder, src, rowIdx); err != nil {
				builder.Release()
				for _, arr := range arrays[:i] {
					arr.Release()
				}
				return nil, err
			}
		}
		arrays[i] = builder.NewArray()
		builder.Release()
	}
	rec := array.NewRecord(arrow.NewSchema(fields, nil), arrays, int64(len(rows)))
	for _, arr := range arrays {
		arr.Release()
	}
	var rowNames []string
	if t.rowNames != nil {
		rowNames = make([]string, len(rows))
		for i, rowIdx := range rows {
			rowNames[i] = t.rowNames[rowIdx]
		}
	}
	return newTable(rec, rowNames), nil
}
