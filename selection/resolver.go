package selection

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/go-rtab/rtab"
	"github.com/go-rtab/rtab/errors"
)

const (
	// RowAxis names the row dimension of a table in Axis values and error reports
	RowAxis = "row"
	// ColumnAxis names the column dimension of a table in Axis values and error reports
	ColumnAxis = "column"
)

// Axis describes one dimension of a table for selector resolution: which
// dimension it is, its extent, and optionally the name attached to each
// position along it.
type Axis struct {
	Kind     string   // RowAxis or ColumnAxis
	Extent   int      // number of positions along the axis
	Names    []string // one name per position, when HasNames
	HasNames bool     // whether label selection is available on this axis
}

// Resolve maps a Selector to the concrete ordered list of zero-based
// positions it selects along axis. Positions appear in selector order and may
// repeat, except under Omit, which always yields ascending position order.
// Resolution is pure: any error aborts the whole resolution and no partial
// position list is returned.
func Resolve(sel rtab.Selector, axis Axis) ([]int, error) {
	if sel == nil {
		return nil, errors.MissingSelectorError{Axis: axis.Kind}
	}
	switch s := sel.(type) {
	case *rtab.AllSelector:
		positions := make([]int, axis.Extent)
		for i := range positions {
			positions[i] = i
		}
		return positions, nil
	case *rtab.PositionSelector:
		if err := checkPosition(s.Index, axis); err != nil {
			return nil, err
		}
		return []int{s.Index}, nil
	case *rtab.PositionsSelector:
		positions := make([]int, 0, len(s.Indices))
		for _, idx := range s.Indices {
			if err := checkPosition(idx, axis); err != nil {
				return nil, err
			}
			positions = append(positions, idx)
		}
		return positions, nil
	case *rtab.LabelSelector:
		idx, err := lookupLabel(s.Name, axis)
		if err != nil {
			return nil, err
		}
		return []int{idx}, nil
	case *rtab.LabelsSelector:
		positions := make([]int, 0, len(s.Names))
		for _, name := range s.Names {
			idx, err := lookupLabel(name, axis)
			if err != nil {
				return nil, err
			}
			positions = append(positions, idx)
		}
		return positions, nil
	case *rtab.RangeSelector:
		// bounds are validated even for spans which turn out to be empty
		if s.Start < 0 || s.Start > axis.Extent {
			return nil, errors.PositionOutOfRangeError{Axis: axis.Kind, Position: s.Start, Extent: axis.Extent}
		}
		if s.Stop < 0 || s.Stop > axis.Extent {
			return nil, errors.PositionOutOfRangeError{Axis: axis.Kind, Position: s.Stop, Extent: axis.Extent}
		}
		if s.Start >= s.Stop {
			return []int{}, nil
		}
		positions := make([]int, 0, s.Stop-s.Start)
		for i := s.Start; i < s.Stop; i++ {
			positions = append(positions, i)
		}
		return positions, nil
	case *rtab.MaskSelector:
		if len(s.Keep) != axis.Extent {
			return nil, errors.MaskLengthError{Axis: axis.Kind, MaskLength: len(s.Keep), Extent: axis.Extent}
		}
		positions := make([]int, 0, axis.Extent)
		for i, keep := range s.Keep {
			if keep {
				positions = append(positions, i)
			}
		}
		return positions, nil
	case *rtab.OmitSelector:
		inner, err := Resolve(s.Inner, axis)
		if err != nil {
			return nil, err
		}
		omitted := roaring64.New()
		for _, idx := range inner {
			omitted.Add(uint64(idx))
		}
		kept := roaring64.New()
		if axis.Extent > 0 {
			kept.AddRange(0, uint64(axis.Extent))
		}
		kept.AndNot(omitted)
		positions := make([]int, 0, kept.GetCardinality())
		iter := kept.Iterator()
		for iter.HasNext() {
			positions = append(positions, int(iter.Next()))
		}
		return positions, nil
	default:
		return nil, errors.UnsupportedSelectorError{TypeName: fmt.Sprintf("%T", sel)}
	}
}

func checkPosition(idx int, axis Axis) error {
	if idx < 0 || idx >= axis.Extent {
		return errors.PositionOutOfRangeError{Axis: axis.Kind, Position: idx, Extent: axis.Extent}
	}
	return nil
}

func lookupLabel(name string, axis Axis) (int, error) {
	if !axis.HasNames {
		if axis.Kind == RowAxis {
			return 0, errors.NoRowLabelsError{}
		}
		return 0, errors.UnknownLabelError{Axis: axis.Kind, Name: name}
	}
	for i, n := range axis.Names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.UnknownLabelError{Axis: axis.Kind, Name: name}
}
