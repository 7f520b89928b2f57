package rstats

import (
	"math"
	"testing"

	"github.com/go-rtab/rtab/errors"
	"github.com/stretchr/testify/require"
)

func TestDataRange(t *testing.T) {
	min, max, err := DataRange([]float64{3, 1, 2})
	require.Nil(t, err)
	require.Equal(t, 1.0, min)
	require.Equal(t, 3.0, max)
}

func TestDataRangeSkipsNaN(t *testing.T) {
	min, max, err := DataRange([]float64{math.NaN(), 5, math.NaN(), -2})
	require.Nil(t, err)
	require.Equal(t, -2.0, min)
	require.Equal(t, 5.0, max)
}

func TestDataRangeEmpty(t *testing.T) {
	_, _, err := DataRange(nil)
	require.IsType(t, errors.EmptyDataError{}, err)

	_, _, err = DataRange([]float64{math.NaN()})
	require.IsType(t, errors.EmptyDataError{}, err)
}

func TestQuantile(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	qs, err := Quantile(xs, 0, 0.5, 1)
	require.Nil(t, err)
	require.Len(t, qs, 3)
	require.InDelta(t, 1.0, qs[0], 0.5)
	require.InDelta(t, 3.0, qs[1], 0.5)
	require.InDelta(t, 5.0, qs[2], 0.5)
}

func TestQuantileBounds(t *testing.T) {
	_, err := Quantile([]float64{1, 2}, 1.5)
	require.IsType(t, errors.QuantileBoundsError{}, err)

	_, err = Quantile([]float64{1, 2}, -0.1)
	require.IsType(t, errors.QuantileBoundsError{}, err)
}

func TestQuantileEmpty(t *testing.T) {
	_, err := Quantile(nil, 0.5)
	require.IsType(t, errors.EmptyDataError{}, err)
}

func TestSummary(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	summary, err := Summary(xs)
	require.Nil(t, err)
	require.Equal(t, 1.0, summary.Min)
	require.Equal(t, 8.0, summary.Max)
	require.Equal(t, 4.5, summary.Mean)
	require.InDelta(t, 2.5, summary.Q1, 1.0)
	require.InDelta(t, 4.5, summary.Median, 1.0)
	require.InDelta(t, 6.5, summary.Q3, 1.0)
}

func TestSummaryEmpty(t *testing.T) {
	_, err := Summary(nil)
	require.IsType(t, errors.EmptyDataError{}, err)
}
