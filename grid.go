// grid.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Row and Window types. A Window holds
// the small, fixed number of consecutive grid rows that a match
// can span, so that a grid of any height is scanned in constant
// memory.

package xmas

import (
	"io"
)

// A Row is a single line of the character grid. Columns are rune
// positions within the line. The zero-length Row is the sentinel
// that marks the end of the input.
type Row []rune

// A Direction is the column step applied for each row when a
// candidate is formed upwards from its anchor
type Direction int

const (
	// Vertical reads straight up from the anchor column
	Vertical Direction = 0
	// DiagonalRight moves one column to the right for each row
	DiagonalRight Direction = 1
	// DiagonalLeft moves one column to the left for each row
	DiagonalLeft Direction = -1
)

// A Window is an ordered buffer of exactly K consecutive grid
// rows, K being the length of the pattern being matched. It is
// owned by the scan that created it; Advance is its only mutator.
// Once the source runs dry, empty sentinel rows accumulate at the
// tail of the window until the leading row itself is a sentinel,
// at which point every real row has been fully processed.
type Window struct {
	rows []Row
}

// NewWindow creates a Window of k rows, primed with the first k
// rows of the source. If the source holds fewer than k rows, the
// remainder of the window is left as empty sentinel rows. Only an
// upstream read error makes this fail.
func NewWindow(src LineSource, k int) (*Window, error) {
	window := &Window{rows: make([]Row, k)}
	for i := 0; i < k; i++ {
		row, err := src.ReadRow()
		if err == io.EOF {
			// The unfilled tail stays sentinel
			break
		}
		if err != nil {
			return nil, err
		}
		window.rows[i] = row
	}
	return window, nil
}

// Advance drops the leading row, shifts the remaining rows one
// position towards the front, and appends the next row from the
// source, or an empty sentinel row if the source is exhausted.
// Each call consumes at most one row from the source. The row
// storage is reused in place; no allocation occurs per step.
func (window *Window) Advance(src LineSource) error {
	row, err := src.ReadRow()
	if err == io.EOF {
		row = nil
	} else if err != nil {
		return err
	}
	k := len(window.rows)
	copy(window.rows, window.rows[1:])
	window.rows[k-1] = row
	return nil
}

// Height returns the number of rows in the window
func (window *Window) Height() int {
	return len(window.rows)
}

// Row returns the window row at the given index, index 0 being
// the oldest (leading) row
func (window *Window) Row(i int) Row {
	return window.rows[i]
}

// Bottom returns the newest row of the window, on which all
// candidate formation is anchored
func (window *Window) Bottom() Row {
	return window.rows[len(window.rows)-1]
}

// Fragment forms a candidate by reading one rune from each row of
// the window, starting at the given column of the bottom row and
// shifting the column by dir for every row above it. If a read
// would fall off either edge of a row, the candidate is cut short
// at that point, which makes it an automatic non-match for any
// full-length pattern. The window is not modified.
func (window *Window) Fragment(col int, dir Direction) Row {
	k := len(window.rows)
	fragment := make(Row, 0, k)
	for i := 0; i < k; i++ {
		row := window.rows[k-1-i]
		c := col + i*int(dir)
		if c < 0 || c >= len(row) {
			break
		}
		fragment = append(fragment, row[c])
	}
	return fragment
}
