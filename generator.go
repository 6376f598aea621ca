// generator.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the puzzle generator. It plants a target
// word at random positions and orientations in a fresh grid and
// fills the remaining cells with random letters drawn from the
// word itself, mimicking the letter distribution of the puzzle
// class.

package xmas

import (
	"fmt"
	"math/rand"
	"time"
)

// orientations are the eight (row, column) unit steps that a
// planted word can follow
var orientations = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// DefaultGridSize is the default number of rows and of columns
// in a generated grid
const DefaultGridSize = 10

// Limit on failed placement attempts per generated grid
const maxPlacementAttempts = 1000

// GeneratorParams holds the parameters for puzzle generation.
type GeneratorParams struct {
	Word       string // The word to plant; also supplies the filler letters
	Rows       int    // Number of rows in the grid
	Cols       int    // Number of columns in the grid
	Placements int    // Number of occurrences to aim for
	Seed       int64  // Random seed; 0 seeds from the clock
}

// A Generator produces random word search grids
type Generator struct {
	word    Row
	letters Row
	rows    int
	cols    int
	target  int
	rng     *rand.Rand
}

// NewGenerator validates the given parameters and creates a
// Generator for them
func NewGenerator(params GeneratorParams) (*Generator, error) {
	word := Row(params.Word)
	if len(word) < 2 {
		return nil, fmt.Errorf("word '%s' is too short to plant", params.Word)
	}
	if params.Rows < 1 || params.Cols < 1 {
		return nil, fmt.Errorf("invalid grid dimensions %vx%v", params.Rows, params.Cols)
	}
	if len(word) > params.Rows && len(word) > params.Cols {
		return nil, fmt.Errorf("word '%s' does not fit in a %vx%v grid",
			params.Word, params.Rows, params.Cols)
	}
	if params.Placements < 0 {
		return nil, fmt.Errorf("invalid placement count %v", params.Placements)
	}
	// The filler alphabet is the set of distinct letters of the word
	letters := make(Row, 0, len(word))
	for _, r := range word {
		if !ContainsRune(letters, r) {
			letters = append(letters, r)
		}
	}
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		word:    word,
		letters: letters,
		rows:    params.Rows,
		cols:    params.Cols,
		target:  params.Placements,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate produces a grid, returning its rows together with the
// number of word occurrences actually planted. Planted words may
// share compatible cells, and the random filler can spell out
// further occurrences by accident, so the planted number is a
// lower bound on what a scan of the grid finds.
func (gen *Generator) Generate() ([]string, int) {
	// A zero cell has not been assigned a letter yet
	grid := make([][]rune, gen.rows)
	for i := range grid {
		grid[i] = make([]rune, gen.cols)
	}
	planted := 0
	for attempts := 0; planted < gen.target && attempts < maxPlacementAttempts; attempts++ {
		if gen.place(grid) {
			planted++
		}
	}
	// Fill the unassigned cells with random letters of the word
	rows := make([]string, gen.rows)
	for r, row := range grid {
		for c, cell := range row {
			if cell == 0 {
				row[c] = gen.letters[gen.rng.Intn(len(gen.letters))]
			}
		}
		rows[r] = string(row)
	}
	return rows, planted
}

// place tries a single random position and orientation for the
// word, writing it into the grid if every cell on its path is
// either unassigned or already holds the required letter
func (gen *Generator) place(grid [][]rune) bool {
	o := orientations[gen.rng.Intn(len(orientations))]
	dr, dc := o[0], o[1]
	n := len(gen.word)
	r := gen.rng.Intn(gen.rows)
	c := gen.rng.Intn(gen.cols)
	endRow := r + dr*(n-1)
	endCol := c + dc*(n-1)
	if endRow < 0 || endRow >= gen.rows || endCol < 0 || endCol >= gen.cols {
		return false
	}
	// Check the whole path before writing anything
	for i, letter := range gen.word {
		cell := grid[r+dr*i][c+dc*i]
		if cell != 0 && cell != letter {
			return false
		}
	}
	for i, letter := range gen.word {
		grid[r+dr*i][c+dc*i] = letter
	}
	return true
}
