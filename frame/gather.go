package frame

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// appendValue copies the value at position pos of col into builder, which
// must have been created for col's data type. Types outside the typed cases
// round-trip through their Arrow string form.
func appendValue(builder array.Builder, col arrow.Array, pos int) error {
	if col.IsNull(pos) {
		builder.AppendNull()
		return nil
	}
	switch col.DataType().ID() {
	case arrow.BOOL:
		builder.(*array.BooleanBuilder).Append(col.(*array.Boolean).Value(pos))
	case arrow.INT8:
		builder.(*array.Int8Builder).Append(col.(*array.Int8).Value(pos))
	case arrow.INT16:
		builder.(*array.Int16Builder).Append(col.(*array.Int16).Value(pos))
	case arrow.INT32:
		builder.(*array.Int32Builder).Append(col.(*array.Int32).Value(pos))
	case arrow.INT64:
		builder.(*array.Int64Builder).Append(col.(*array.Int64).Value(pos))
	case arrow.UINT8:
		builder.(*array.Uint8Builder).Append(col.(*array.Uint8).Value(pos))
	case arrow.UINT16:
		builder.(*array.Uint16Builder).Append(col.(*array.Uint16).Value(pos))
	case arrow.UINT32:
		builder.(*array.Uint32Builder).Append(col.(*array.Uint32).Value(pos))
	case arrow.UINT64:
		builder.(*array.Uint64Builder).Append(col.(*array.Uint64).Value(pos))
	case arrow.FLOAT32:
		builder.(*array.Float32Builder).Append(col.(*array.Float32).Value(pos))
	case arrow.FLOAT64:
		builder.(*array.Float64Builder).Append(col.(*array.Float64).Value(pos))
	case arrow.STRING:
		builder.(*array.StringBuilder).Append(col.(*array.String).Value(pos))
	case arrow.BINARY:
		builder.(*array.BinaryBuilder).Append(col.(*array.Binary).Value(pos))
	case arrow.TIMESTAMP:
		builder.(*array.TimestampBuilder).Append(col.(*array.Timestamp).Value(pos))
	default:
		return builder.AppendValueFromString(col.ValueStr(pos))
	}
	return nil
}
