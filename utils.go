// utils.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains general utility functions.

package xmas

// Return a reversed copy of a slice of runes.
func ReverseRunes(s []rune) []rune {
	result := make([]rune, len(s))
	for i, runeValue := range s {
		result[len(s)-1-i] = runeValue
	}
	return result
}

// Return true if two slices of runes have identical contents.
func EqualRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, runeValue := range a {
		if b[i] != runeValue {
			return false
		}
	}
	return true
}

// Return true if a slice of runes contains a given rune.
func ContainsRune(s []rune, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
