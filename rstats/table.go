// Package rstats implements the R-style aggregate helpers of rtab: frequency
// tables, cross-tabulation, data ranges and quantile summaries.
package rstats

import (
	"encoding/binary"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/go-rtab/rtab/errors"
	"github.com/go-rtab/rtab/frame"
)

// Tabulate computes the frequency table of one categorical variable,
// returned as a two-column Table (value, count) ordered by descending count,
// ties broken by value.
func Tabulate(values []string) (*frame.Table, error) {
	counts := make(map[string]int64)
	for _, val := range values {
		counts[val]++
	}
	levels := make([]string, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		if counts[levels[i]] != counts[levels[j]] {
			return counts[levels[i]] > counts[levels[j]]
		}
		return levels[i] < levels[j]
	})
	freqs := make([]int64, len(levels))
	for i, level := range levels {
		freqs[i] = counts[level]
	}
	return frame.CreateBuilder().String("value", levels).Int64("count", freqs).Build()
}

// CrossTabConf configures CrossTab
type CrossTabConf struct {
	Margins   bool   // If true, append a Sum row and a Sum column of totals.
	LevelName string // The name of the output column holding the first variable's levels. Defaults to "value".
}

// crossCell is one cell of a contingency table under construction
type crossCell struct {
	row string
	col string
	n   int64
}

// CrossTab computes the two-variable contingency table of a against b, which
// must have equal length. The output Table has one row per level of a and
// one int64 column per level of b, levels in ascending order, plus margin
// totals when configured.
func CrossTab(a []string, b []string, conf *CrossTabConf) (*frame.Table, error) {
	if conf == nil {
		conf = &CrossTabConf{}
	}
	levelName := conf.LevelName
	if levelName == "" {
		levelName = "value"
	}
	if len(a) != len(b) {
		return nil, errors.LengthMismatchError{LeftLength: len(a), RightLength: len(b)}
	}

	// group observation pairs by a 64-bit joint key, keeping the labels on
	// the cell so levels can be recovered in sorted order afterwards
	cells := make(map[uint64]*crossCell)
	for i := range a {
		key := jointKey(a[i], b[i])
		cell, ok := cells[key]
		if !ok {
			cell = &crossCell{row: a[i], col: b[i]}
			cells[key] = cell
		}
		cell.n++
	}

	rowLevels := sortedLevels(a)
	colLevels := sortedLevels(b)
	counts := make(map[string]map[string]int64, len(rowLevels))
	for _, level := range rowLevels {
		counts[level] = make(map[string]int64, len(colLevels))
	}
	for _, cell := range cells {
		counts[cell.row][cell.col] = cell.n
	}

	builder := frame.CreateBuilder()
	outRows := rowLevels
	if conf.Margins {
		outRows = append(append([]string{}, rowLevels...), "Sum")
	}
	builder.String(levelName, outRows)
	colTotals := make(map[string]int64, len(colLevels))
	grand := int64(0)
	for _, colLevel := range colLevels {
		vals := make([]int64, 0, len(outRows))
		for _, rowLevel := range rowLevels {
			vals = append(vals, counts[rowLevel][colLevel])
			colTotals[colLevel] += counts[rowLevel][colLevel]
		}
		if conf.Margins {
			vals = append(vals, colTotals[colLevel])
		}
		grand += colTotals[colLevel]
		builder.Int64(colLevel, vals)
	}
	if conf.Margins {
		sums := make([]int64, 0, len(outRows))
		for _, rowLevel := range rowLevels {
			rowTotal := int64(0)
			for _, colLevel := range colLevels {
				rowTotal += counts[rowLevel][colLevel]
			}
			sums = append(sums, rowTotal)
		}
		sums = append(sums, grand)
		builder.Int64("Sum", sums)
	}
	return builder.Build()
}

// jointKey hashes a pair of labels into a single 64-bit grouping key. The
// first label is length-prefixed so ("ab","c") and ("a","bc") key apart.
func jointKey(row string, col string) uint64 {
	hasher := xxhash.New()
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(row)))
	hasher.Write(lenBuf[:])
	hasher.WriteString(row)
	hasher.WriteString(col)
	return hasher.Sum64()
}

func sortedLevels(values []string) []string {
	seen := make(map[string]bool, len(values))
	levels := make([]string, 0, len(values))
	for _, val := range values {
		if !seen[val] {
			seen[val] = true
			levels = append(levels, val)
		}
	}
	sort.Strings(levels)
	return levels
}
