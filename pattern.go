// pattern.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Pattern type, which matches formed
// candidates and raw grid rows against a target word and its
// reversal.

package xmas

// A Pattern is a fixed target word together with its precomputed
// reversal. Patterns are constructed explicitly by the scans that
// use them; there is no global pattern state.
type Pattern struct {
	word     Row
	reversed Row
}

// NewPattern creates a Pattern for the given target word
func NewPattern(word string) Pattern {
	runes := []rune(word)
	return Pattern{word: runes, reversed: ReverseRunes(runes)}
}

// Length returns the number of runes in the target word
func (pattern *Pattern) Length() int {
	return len(pattern.word)
}

// String returns the target word
func (pattern *Pattern) String() string {
	return string(pattern.word)
}

// Matches returns true if the candidate spells the target word,
// read in either direction. A candidate of any other length never
// matches.
func (pattern *Pattern) Matches(candidate Row) bool {
	return EqualRunes(candidate, pattern.word) ||
		EqualRunes(candidate, pattern.reversed)
}

// CountInRow returns the number of possibly overlapping
// occurrences of the target word within the row, plus the number
// of occurrences of its reversal. A palindromic word is counted
// under both readings.
func (pattern *Pattern) CountInRow(row Row) int {
	return countOverlapping(row, pattern.word) +
		countOverlapping(row, pattern.reversed)
}

// countOverlapping counts the occurrences of word within row,
// advancing a single column after each comparison so that
// overlapping occurrences are all included
func countOverlapping(row Row, word Row) int {
	if len(word) == 0 {
		return 0
	}
	count := 0
	for start := 0; start+len(word) <= len(row); start++ {
		if EqualRunes(row[start:start+len(word)], word) {
			count++
		}
	}
	return count
}
