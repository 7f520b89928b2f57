package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Column is an immutable view of a single Table column. It remains valid as
// long as the Table it came from has not been released.
type Column struct {
	name string
	arr  arrow.Array
}

// Name returns the name of this Column
func (c *Column) Name() string {
	return c.name
}

// Len returns the number of values in this Column
func (c *Column) Len() int {
	return c.arr.Len()
}

// DataType returns the Arrow type of this Column's values
func (c *Column) DataType() arrow.DataType {
	return c.arr.DataType()
}

// IsNull returns true iff the value at position i is null
func (c *Column) IsNull(i int) bool {
	return c.arr.IsNull(i)
}

// Array returns the underlying Arrow array for this Column
func (c *Column) Array() arrow.Array {
	return c.arr
}

// Value returns the value at position i as an interface{}, or nil for null
// values. Types outside the bool/int64/float64/string/timestamp core are
// rendered through their Arrow string form.
func (c *Column) Value(i int) interface{} {
	if c.arr.IsNull(i) {
		return nil
	}
	switch c.arr.DataType().ID() {
	case arrow.BOOL:
		return c.arr.(*array.Boolean).Value(i)
	case arrow.INT64:
		return c.arr.(*array.Int64).Value(i)
	case arrow.FLOAT64:
		return c.arr.(*array.Float64).Value(i)
	case arrow.STRING:
		return c.arr.(*array.String).Value(i)
	case arrow.TIMESTAMP:
		unit := c.arr.DataType().(*arrow.TimestampType).Unit
		return c.arr.(*array.Timestamp).Value(i).ToTime(unit)
	default:
		return c.arr.ValueStr(i)
	}
}

// Float64s returns this Column's values as a float64 slice, if it is a
// float64 column
func (c *Column) Float64s() ([]float64, error) {
	typed, ok := c.arr.(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("Column %s is not a float64 column. Was: %s", c.name, c.arr.DataType())
	}
	vals := make([]float64, typed.Len())
	copy(vals, typed.Float64Values())
	return vals, nil
}

// Int64s returns this Column's values as an int64 slice, if it is an int64
// column
func (c *Column) Int64s() ([]int64, error) {
	typed, ok := c.arr.(*array.Int64)
	if !ok {
		return nil, fmt.Errorf("Column %s is not an int64 column. Was: %s", c.name, c.arr.DataType())
	}
	vals := make([]int64, typed.Len())
	copy(vals, typed.Int64Values())
	return vals, nil
}

// Strings returns this Column's values as a string slice, if it is a string
// column
func (c *Column) Strings() ([]string, error) {
	typed, ok := c.arr.(*array.String)
	if !ok {
		return nil, fmt.Errorf("Column %s is not a string column. Was: %s", c.name, c.arr.DataType())
	}
	vals := make([]string, typed.Len())
	for i := range vals {
		vals[i] = typed.Value(i)
	}
	return vals, nil
}

// Bools returns this Column's values as a bool slice, if it is a boolean
// column
func (c *Column) Bools() ([]bool, error) {
	typed, ok := c.arr.(*array.Boolean)
	if !ok {
		return nil, fmt.Errorf("Column %s is not a boolean column. Was: %s", c.name, c.arr.DataType())
	}
	vals := make([]bool, typed.Len())
	for i := range vals {
		vals[i] = typed.Value(i)
	}
	return vals, nil
}
