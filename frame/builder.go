package frame

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-rtab/rtab/errors"
)

// Builder assembles a Table from Go slices, one named column at a time.
// Builder methods chain; the first error encountered is reported by Build.
type Builder struct {
	pool     memory.Allocator
	fields   []arrow.Field
	arrays   []arrow.Array
	rowNames []string
	err      error
}

// CreateBuilder returns a new Table Builder
func CreateBuilder() *Builder {
	return &Builder{pool: memory.NewGoAllocator()}
}

// Float64 appends a float64 column with the given name and values
func (b *Builder) Float64(name string, vals []float64) *Builder {
	if b.checkName(name) {
		ab := array.NewFloat64Builder(b.pool)
		defer ab.Release()
		ab.AppendValues(vals, nil)
		b.appendColumn(name, arrow.PrimitiveTypes.Float64, ab.NewArray())
	}
	return b
}

// Int64 appends an int64 column with the given name and values
func (b *Builder) Int64(name string, vals []int64) *Builder {
	if b.checkName(name) {
		ab := array.NewInt64Builder(b.pool)
		defer ab.Release()
		ab.AppendValues(vals, nil)
		b.appendColumn(name, arrow.PrimitiveTypes.Int64, ab.NewArray())
	}
	return b
}

// String appends a string column with the given name and values
func (b *Builder) String(name string, vals []string) *Builder {
	if b.checkName(name) {
		ab := array.NewStringBuilder(b.pool)
		defer ab.Release()
		ab.AppendValues(vals, nil)
		b.appendColumn(name, arrow.BinaryTypes.String, ab.NewArray())
	}
	return b
}

// Bool appends a boolean column with the given name and values
func (b *Builder) Bool(name string, vals []bool) *Builder {
	if b.checkName(name) {
		ab := array.NewBooleanBuilder(b.pool)
		defer ab.Release()
		ab.AppendValues(vals, nil)
		b.appendColumn(name, arrow.FixedWidthTypes.Boolean, ab.NewArray())
	}
	return b
}

// RowNames attaches one name per row to the Table under construction
func (b *Builder) RowNames(names []string) *Builder {
	b.rowNames = names
	return b
}

// Build validates the accumulated columns and returns the finished Table.
// Columns must have equal lengths and unique names; row names, if supplied,
// must cover the rows exactly.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		b.release()
		return nil, b.err
	}
	nrows := 0
	if len(b.arrays) > 0 {
		nrows = b.arrays[0].Len()
	} else if b.rowNames != nil {
		nrows = len(b.rowNames)
	}
	for i, arr := range b.arrays {
		if arr.Len() != nrows {
			err := errors.ColumnLengthError{Name: b.fields[i].Name, Length: arr.Len(), Extent: nrows}
			b.release()
			return nil, err
		}
	}
	if b.rowNames != nil && len(b.rowNames) != nrows {
		err := errors.RowNameCountError{Count: len(b.rowNames), Extent: nrows}
		b.release()
		return nil, err
	}
	schema := arrow.NewSchema(b.fields, nil)
	rec := array.NewRecord(schema, b.arrays, int64(nrows))
	b.release()
	return newTable(rec, b.rowNames), nil
}

// checkName records a DuplicateColumnError for repeated names and reports
// whether the builder is still healthy
func (b *Builder) checkName(name string) bool {
	if b.err != nil {
		return false
	}
	for _, field := range b.fields {
		if field.Name == name {
			b.err = errors.DuplicateColumnError{Name: name}
			return false
		}
	}
	return true
}

func (b *Builder) appendColumn(name string, dtype arrow.DataType, arr arrow.Array) {
	b.fields = append(b.fields, arrow.Field{Name: name, Type: dtype})
	b.arrays = append(b.arrays, arr)
}

func (b *Builder) release() {
	for _, arr := range b.arrays {
		arr.Release()
	}
	b.arrays = nil
}
