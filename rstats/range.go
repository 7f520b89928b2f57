package rstats

import (
	"fmt"
	"math"

	"github.com/caio/go-tdigest/v4"

	"github.com/go-rtab/rtab/errors"
)

// DataRange returns the smallest and largest entries of xs, ignoring NaNs.
// Zero usable observations is an error, never a degenerate range.
func DataRange(xs []float64) (min float64, max float64, err error) {
	min = math.Inf(1)
	max = math.Inf(-1)
	n := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		n++
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if n == 0 {
		return 0, 0, errors.EmptyDataError{}
	}
	return min, max, nil
}

// Quantile estimates the requested quantiles of xs with a t-digest sketch,
// ignoring NaNs. Each q must lie within [0, 1].
func Quantile(xs []float64, qs ...float64) ([]float64, error) {
	for _, q := range qs {
		if q < 0 || q > 1 || math.IsNaN(q) {
			return nil, errors.QuantileBoundsError{Q: q}
		}
	}
	td, err := sketch(xs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = td.Quantile(q)
	}
	return out, nil
}

// SummaryStats is the R-style six-number summary of a numeric variable
type SummaryStats struct {
	Min    float64
	Q1     float64
	Median float64
	Mean   float64
	Q3     float64
	Max    float64
}

// Summary computes the six-number summary of xs. Min, Max and Mean are
// exact; the quartiles are t-digest estimates.
func Summary(xs []float64) (SummaryStats, error) {
	min, max, err := DataRange(xs)
	if err != nil {
		return SummaryStats{}, err
	}
	td, err := sketch(xs)
	if err != nil {
		return SummaryStats{}, err
	}
	sum := 0.0
	n := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		sum += x
		n++
	}
	return SummaryStats{
		Min:    min,
		Q1:     td.Quantile(0.25),
		Median: td.Quantile(0.5),
		Mean:   sum / float64(n),
		Q3:     td.Quantile(0.75),
		Max:    max,
	}, nil
}

func sketch(xs []float64) (*tdigest.TDigest, error) {
	td, err := tdigest.New()
	if err != nil {
		return nil, fmt.Errorf("tdigest.New failed: %w", err)
	}
	n := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if err := td.AddWeighted(x, 1); err != nil {
			return nil, fmt.Errorf("tdigest AddWeighted failed: %w", err)
		}
		n++
	}
	if n == 0 {
		return nil, errors.EmptyDataError{}
	}
	return td, nil
}
