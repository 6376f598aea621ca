// scan.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the scan engine that drives a Window over
// a line source and tallies pattern matches, together with the
// two standard entry points for the XMAS puzzle class.

package xmas

import (
	"fmt"
	"os"
)

const (
	// LinearWord is the word sought by the standard linear scan
	LinearWord = "XMAS"
	// CrossArmWord is the word spelled by each diagonal arm of
	// the X shape sought by the standard cross scan
	CrossArmWord = "MAS"
)

// formedDirections are the directions evaluated for every
// bottom-row anchor during a linear scan. Horizontal matches are
// counted separately, on whole rows.
var formedDirections = [...]Direction{Vertical, DiagonalRight, DiagonalLeft}

// A Scan is a parameterized word search over a grid of rows. The
// same engine runs both matching policies: a straight word sought
// in all four directions, or an X shape made of two crossing
// diagonal arms. A Scan holds no per-grid state and can be reused
// for any number of grids.
type Scan struct {
	pattern Pattern
	// cross selects X matching instead of all-direction matching
	cross bool
}

// NewLinearScan creates a scan that counts occurrences of the
// word in every direction: horizontal, vertical and the two
// diagonals, each direction read forwards and backwards.
func NewLinearScan(word string) *Scan {
	return &Scan{pattern: NewPattern(word)}
}

// NewCrossScan creates a scan that counts X shapes whose two
// crossing diagonal arms both spell the arm word, each arm read
// in either direction. The canonical arm word MAS yields the
// X-MAS shape of the puzzle class.
func NewCrossScan(armWord string) *Scan {
	return &Scan{pattern: NewPattern(armWord), cross: true}
}

// Count runs the scan over the rows produced by src and returns
// the total number of matches found in the grid. The scan runs in
// three phases: the window is primed with the first rows of the
// source, then each step counts the matches visible in the window
// and shifts it down the grid by one row, and the total is
// returned once the leading window row is an empty sentinel,
// meaning that every real row has been fully processed. The only
// possible failure is a read error from the source, which aborts
// the scan immediately and is returned as is.
func (scan *Scan) Count(src LineSource) (int, error) {
	k := scan.pattern.Length()
	if k == 0 {
		// An empty pattern matches nothing
		return 0, nil
	}
	window, err := NewWindow(src, k)
	if err != nil {
		return 0, err
	}
	count := 0
	for len(window.Row(0)) > 0 {
		count += scan.countWindow(window)
		if err := window.Advance(src); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// countWindow tallies the matches visible in the current window
func (scan *Scan) countWindow(window *Window) int {
	if scan.cross {
		return scan.countCrosses(window)
	}
	// Horizontal occurrences are counted on the leading row,
	// which every grid row passes through exactly once
	count := scan.pattern.CountInRow(window.Row(0))
	// Vertical and diagonal candidates are anchored on each
	// column of the bottom row
	for col := range window.Bottom() {
		for _, dir := range formedDirections {
			if scan.pattern.Matches(window.Fragment(col, dir)) {
				count++
			}
		}
	}
	return count
}

// countCrosses tallies the X shapes whose arms are anchored on
// the bottom row of the window. The right-leaning arm starting at
// col and the left-leaning arm starting at col+K-1 pass through
// the same center cell, so requiring both to match finds exactly
// the complete X shapes.
func (scan *Scan) countCrosses(window *Window) int {
	k := scan.pattern.Length()
	count := 0
	for col := range window.Bottom() {
		if !scan.pattern.Matches(window.Fragment(col, DiagonalRight)) {
			continue
		}
		if scan.pattern.Matches(window.Fragment(col+k-1, DiagonalLeft)) {
			count++
		}
	}
	return count
}

// CountCrossPattern counts the X-MAS shapes in the grid produced
// by src: X arrangements where both crossing diagonals spell MAS
// or SAM.
func CountCrossPattern(src LineSource) (int, error) {
	return NewCrossScan(CrossArmWord).Count(src)
}

// CountLinearWord counts the occurrences of XMAS in the grid
// produced by src, across all four directions, forwards and
// backwards.
func CountLinearWord(src LineSource) (int, error) {
	return NewLinearScan(LinearWord).Count(src)
}

// CountCrossPatternFile counts the X-MAS shapes in the grid read
// from the given file
func CountCrossPatternFile(path string) (int, error) {
	return countFile(path, NewCrossScan(CrossArmWord))
}

// CountLinearWordFile counts the XMAS occurrences in the grid
// read from the given file
func CountLinearWordFile(path string) (int, error) {
	return countFile(path, NewLinearScan(LinearWord))
}

// countFile opens a grid file, runs the scan over its lines, and
// closes the file again on every return path
func countFile(path string, scan *Scan) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("could not open grid file: %w", err)
	}
	defer f.Close()
	return scan.Count(NewLineSource(f))
}
