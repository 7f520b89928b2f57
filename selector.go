package rtab

// A Selector describes which positions along one axis of a table (rows or
// columns) a selection should include. Selectors are constructed with All,
// Position, Positions, Label, Labels, Range, Mask and Omit, and resolved
// against a concrete axis by the selection package.
type Selector interface {
	selector() // limits Selector implementations to this package
}

// AllSelector selects every position along an axis.
type AllSelector struct{}

func (s *AllSelector) selector() {}

// All returns a Selector which selects every position along an axis.
func All() Selector {
	return &AllSelector{}
}

// PositionSelector selects a single zero-based position along an axis.
type PositionSelector struct {
	Index int
}

func (s *PositionSelector) selector() {}

// Position returns a Selector which selects the single zero-based position i.
// Negative positions are not supported.
func Position(i int) Selector {
	return &PositionSelector{Index: i}
}

// PositionsSelector selects an ordered set of zero-based positions along an
// axis. Positions may repeat, in which case the selection repeats them.
type PositionsSelector struct {
	Indices []int
}

func (s *PositionsSelector) selector() {}

// Positions returns a Selector which selects the given zero-based positions,
// in the given order.
func Positions(indices ...int) Selector {
	return &PositionsSelector{Indices: indices}
}

// LabelSelector selects a single position along an axis by name.
type LabelSelector struct {
	Name string
}

func (s *LabelSelector) selector() {}

// Label returns a Selector which selects the position carrying the given
// name. Label selection on rows fails when the table has no row names.
func Label(name string) Selector {
	return &LabelSelector{Name: name}
}

// LabelsSelector selects an ordered set of positions along an axis by name.
type LabelsSelector struct {
	Names []string
}

func (s *LabelsSelector) selector() {}

// Labels returns a Selector which selects the positions carrying the given
// names, in the given order.
func Labels(names ...string) Selector {
	return &LabelsSelector{Names: names}
}

// RangeSelector selects the contiguous half-open span of positions
// [Start, Stop) along an axis. A span with Start >= Stop is empty.
type RangeSelector struct {
	Start int
	Stop  int
}

func (s *RangeSelector) selector() {}

// Range returns a Selector which selects the half-open span of positions
// [start, stop) along an axis.
func Range(start int, stop int) Selector {
	return &RangeSelector{Start: start, Stop: stop}
}

// MaskSelector selects positions along an axis via a boolean sequence with
// one entry per position. The mask length must equal the axis extent.
type MaskSelector struct {
	Keep []bool
}

func (s *MaskSelector) selector() {}

// Mask returns a Selector which selects the positions where keep is true, in
// ascending position order.
func Mask(keep ...bool) Selector {
	return &MaskSelector{Keep: keep}
}

// OmitSelector selects the complement of its inner Selector: every position
// along the axis except those the inner Selector resolves to. The complement
// is always produced in ascending position order.
type OmitSelector struct {
	Inner Selector
}

func (s *OmitSelector) selector() {}

// Omit returns a Selector which selects every position except those selected
// by inner.
func Omit(inner Selector) Selector {
	return &OmitSelector{Inner: inner}
}
