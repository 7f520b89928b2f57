package errors

import (
	"fmt"
)

// PositionOutOfRangeError occurs when a positional selector refers to a position outside an axis
type PositionOutOfRangeError struct {
	Axis     string
	Position int
	Extent   int
}

// Error returns a textual representation of this PositionOutOfRangeError
func (e PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("Position %d is out of range for %s axis of extent %d", e.Position, e.Axis, e.Extent)
}

// UnknownLabelError occurs when a label selector names a row or column which does not exist
type UnknownLabelError struct {
	Axis string
	Name string
}

// Error returns a textual representation of this UnknownLabelError
func (e UnknownLabelError) Error() string {
	return fmt.Sprintf("No %s with label %s", e.Axis, e.Name)
}

// NoRowLabelsError occurs when a label selector is applied to the rows of a table without row names
type NoRowLabelsError struct{}

// Error returns a textual representation of this NoRowLabelsError
func (e NoRowLabelsError) Error() string {
	return "Table has no row names"
}

// MaskLengthError occurs when a mask selector's length does not match its axis extent
type MaskLengthError struct {
	Axis       string
	MaskLength int
	Extent     int
}

// Error returns a textual representation of this MaskLengthError
func (e MaskLengthError) Error() string {
	return fmt.Sprintf("Mask of length %d does not match %s axis of extent %d", e.MaskLength, e.Axis, e.Extent)
}

// MissingSelectorError occurs when a selection omits the selector for one axis
type MissingSelectorError struct {
	Axis string
}

// Error returns a textual representation of this MissingSelectorError
func (e MissingSelectorError) Error() string {
	return fmt.Sprintf("A selector for the %s axis must be supplied", e.Axis)
}

// SelectorArityError occurs when a selection supplies fewer or more than two selectors
type SelectorArityError struct {
	Supplied int
}

// Error returns a textual representation of this SelectorArityError
func (e SelectorArityError) Error() string {
	return fmt.Sprintf("Selections require exactly two selectors (rows and columns), got %d", e.Supplied)
}

// UnsupportedSelectorError occurs when a Selector implementation is not known to the resolver
type UnsupportedSelectorError struct {
	TypeName string
}

// Error returns a textual representation of this UnsupportedSelectorError
func (e UnsupportedSelectorError) Error() string {
	return fmt.Sprintf("Selector type %s is not supported", e.TypeName)
}

// DuplicateColumnError occurs when a table is built with two columns sharing a name
type DuplicateColumnError struct {
	Name string
}

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Table already contains a column with name %s", e.Name)
}

// ColumnLengthError occurs when a table is built from columns of unequal length
type ColumnLengthError struct {
	Name   string
	Length int
	Extent int
}

// Error returns a textual representation of this ColumnLengthError
func (e ColumnLengthError) Error() string {
	return fmt.Sprintf("Column %s has length %d but the table has %d rows", e.Name, e.Length, e.Extent)
}

// RowNameCountError occurs when a table's row names do not cover its rows exactly
type RowNameCountError struct {
	Count  int
	Extent int
}

// Error returns a textual representation of this RowNameCountError
func (e RowNameCountError) Error() string {
	return fmt.Sprintf("Got %d row names for a table with %d rows", e.Count, e.Extent)
}

// LengthMismatchError occurs when paired variables do not have equal length
type LengthMismatchError struct {
	LeftLength  int
	RightLength int
}

// Error returns a textual representation of this LengthMismatchError
func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("Variables have unequal lengths %d and %d", e.LeftLength, e.RightLength)
}

// EmptyDataError occurs when a statistic is requested for zero observations
type EmptyDataError struct{}

// Error returns a textual representation of this EmptyDataError
func (e EmptyDataError) Error() string {
	return "No observations"
}

// QuantileBoundsError occurs when a requested quantile lies outside [0, 1]
type QuantileBoundsError struct {
	Q float64
}

// Error returns a textual representation of this QuantileBoundsError
func (e QuantileBoundsError) Error() string {
	return fmt.Sprintf("Quantile %f is outside [0, 1]", e.Q)
}
