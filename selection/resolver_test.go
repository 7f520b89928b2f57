package selection

import (
	"testing"

	"github.com/go-rtab/rtab"
	"github.com/go-rtab/rtab/errors"
	"github.com/stretchr/testify/require"
)

func rowAxis(extent int) Axis {
	return Axis{Kind: RowAxis, Extent: extent}
}

func namedAxis(names ...string) Axis {
	return Axis{Kind: ColumnAxis, Extent: len(names), Names: names, HasNames: true}
}

func TestResolveAll(t *testing.T) {
	positions, err := Resolve(rtab.All(), rowAxis(4))
	require.Nil(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, positions)

	positions, err = Resolve(rtab.All(), rowAxis(0))
	require.Nil(t, err)
	require.Len(t, positions, 0)
}

func TestResolvePositionsPreserveOrderAndDuplicates(t *testing.T) {
	positions, err := Resolve(rtab.Positions(2, 0, 2), rowAxis(3))
	require.Nil(t, err)
	require.Equal(t, []int{2, 0, 2}, positions)
}

func TestResolvePositionOutOfRange(t *testing.T) {
	_, err := Resolve(rtab.Position(3), rowAxis(3))
	require.IsType(t, errors.PositionOutOfRangeError{}, err)

	_, err = Resolve(rtab.Position(-1), rowAxis(3))
	require.IsType(t, errors.PositionOutOfRangeError{}, err)

	_, err = Resolve(rtab.Positions(0, 1, 7), rowAxis(3))
	require.IsType(t, errors.PositionOutOfRangeError{}, err)
}

func TestResolveLabels(t *testing.T) {
	axis := namedAxis("a", "b", "c")

	positions, err := Resolve(rtab.Label("b"), axis)
	require.Nil(t, err)
	require.Equal(t, []int{1}, positions)

	positions, err = Resolve(rtab.Labels("c", "a"), axis)
	require.Nil(t, err)
	require.Equal(t, []int{2, 0}, positions)
}

func TestResolveUnknownLabel(t *testing.T) {
	_, err := Resolve(rtab.Label("nope"), namedAxis("a", "b"))
	require.IsType(t, errors.UnknownLabelError{}, err)
}

func TestResolveRowLabelsUnavailable(t *testing.T) {
	_, err := Resolve(rtab.Label("r0"), rowAxis(3))
	require.IsType(t, errors.NoRowLabelsError{}, err)
}

func TestResolveRange(t *testing.T) {
	positions, err := Resolve(rtab.Range(1, 3), rowAxis(4))
	require.Nil(t, err)
	require.Equal(t, []int{1, 2}, positions)

	// empty span, not an error
	positions, err = Resolve(rtab.Range(3, 3), rowAxis(4))
	require.Nil(t, err)
	require.Len(t, positions, 0)

	positions, err = Resolve(rtab.Range(3, 1), rowAxis(4))
	require.Nil(t, err)
	require.Len(t, positions, 0)
}

func TestResolveRangeBounds(t *testing.T) {
	_, err := Resolve(rtab.Range(0, 5), rowAxis(4))
	require.IsType(t, errors.PositionOutOfRangeError{}, err)

	_, err = Resolve(rtab.Range(-1, 2), rowAxis(4))
	require.IsType(t, errors.PositionOutOfRangeError{}, err)
}

func TestResolveMask(t *testing.T) {
	positions, err := Resolve(rtab.Mask(true, false, true), rowAxis(3))
	require.Nil(t, err)
	require.Equal(t, []int{0, 2}, positions)
}

func TestResolveMaskLengthMismatch(t *testing.T) {
	_, err := Resolve(rtab.Mask(true), rowAxis(3))
	require.IsType(t, errors.MaskLengthError{}, err)
}

func TestResolveOmit(t *testing.T) {
	positions, err := Resolve(rtab.Omit(rtab.Position(1)), rowAxis(3))
	require.Nil(t, err)
	require.Equal(t, []int{0, 2}, positions)

	// omit never reorders; the complement is ascending even when the inner
	// selector is not
	positions, err = Resolve(rtab.Omit(rtab.Positions(3, 0)), rowAxis(5))
	require.Nil(t, err)
	require.Equal(t, []int{1, 2, 4}, positions)
}

func TestResolveOmitAll(t *testing.T) {
	positions, err := Resolve(rtab.Omit(rtab.All()), rowAxis(3))
	require.Nil(t, err)
	require.Len(t, positions, 0)
}

func TestOmitComplementLaw(t *testing.T) {
	extent := 6
	selectors := []rtab.Selector{
		rtab.Positions(1, 4),
		rtab.Range(2, 5),
		rtab.Mask(true, false, true, false, false, true),
		rtab.All(),
	}
	for _, sel := range selectors {
		inner, err := Resolve(sel, rowAxis(extent))
		require.Nil(t, err)
		complement, err := Resolve(rtab.Omit(sel), rowAxis(extent))
		require.Nil(t, err)

		union := make(map[int]int)
		for _, idx := range inner {
			union[idx]++
		}
		for _, idx := range complement {
			union[idx]++
		}
		require.Len(t, union, extent)
		for _, n := range union {
			require.Equal(t, 1, n)
		}
	}
}

func TestDoubleOmitIdentity(t *testing.T) {
	positions, err := Resolve(rtab.Omit(rtab.Omit(rtab.Positions(3, 1))), rowAxis(5))
	require.Nil(t, err)
	require.Equal(t, []int{1, 3}, positions)
}

func TestResolveOmitInnerErrorPropagates(t *testing.T) {
	_, err := Resolve(rtab.Omit(rtab.Position(9)), rowAxis(3))
	require.IsType(t, errors.PositionOutOfRangeError{}, err)
}

func TestResolveNilSelector(t *testing.T) {
	_, err := Resolve(nil, rowAxis(3))
	require.IsType(t, errors.MissingSelectorError{}, err)
}
