// source.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the line sources that feed grid rows to a
// scan, one row at a time.

package xmas

import (
	"bufio"
	"io"
)

// A LineSource produces the successive rows of a character grid.
type LineSource interface {
	// ReadRow returns the next row of the grid, or io.EOF once
	// the source is exhausted. Any other error is a read failure
	// and aborts the scan consuming the source.
	ReadRow() (Row, error)
}

// readerSource adapts a line-oriented io.Reader to a LineSource
type readerSource struct {
	scanner *bufio.Scanner
}

// NewLineSource creates a LineSource that reads newline-separated
// rows from r.
//
// Note that a scan treats the first empty line as the end of the
// grid. The puzzle input format never contains blank lines within
// a grid; a source that can produce them must filter them out
// before handing rows to a scan.
func NewLineSource(r io.Reader) LineSource {
	return &readerSource{scanner: bufio.NewScanner(r)}
}

// ReadRow returns the next line from the underlying reader
func (source *readerSource) ReadRow() (Row, error) {
	if !source.scanner.Scan() {
		if err := source.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return Row(source.scanner.Text()), nil
}

// rowSource produces rows from an in-memory slice of strings
type rowSource struct {
	rows []string
	next int
}

// NewRowSource creates a LineSource over the given rows. This is
// the natural source for grids that are already in memory, such
// as generated puzzles or the rows of a request body.
func NewRowSource(rows ...string) LineSource {
	return &rowSource{rows: rows}
}

// ReadRow returns the next in-memory row
func (source *rowSource) ReadRow() (Row, error) {
	if source.next >= len(source.rows) {
		return nil, io.EOF
	}
	row := Row(source.rows[source.next])
	source.next++
	return row, nil
}
