// main.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Example main program for exercising the xmas module

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	xmas "github.com/vthorsteinsson/GoXmas"
)

// countFile scans the grid file with the requested policy. The
// file stays open only for the duration of the scan.
func countFile(path string, word string, cross bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var scan *xmas.Scan
	if cross {
		scan = xmas.NewCrossScan(xmas.CrossArmWord)
	} else {
		scan = xmas.NewLinearScan(word)
	}
	return scan.Count(xmas.NewLineSource(f))
}

// countRows scans an in-memory grid with the requested policy
func countRows(rows []string, word string, cross bool) int {
	var scan *xmas.Scan
	if cross {
		scan = xmas.NewCrossScan(xmas.CrossArmWord)
	} else {
		scan = xmas.NewLinearScan(word)
	}
	count, _ := scan.Count(xmas.NewRowSource(rows...))
	return count
}

func main() {
	file := flag.String("f", "", "Grid file to scan; a random grid is generated if empty")
	word := flag.String("w", xmas.LinearWord, "Word sought by the linear scan")
	mode := flag.String("mode", "both", "Matching policy (linear, cross, both)")
	rows := flag.Int("rows", xmas.DefaultGridSize, "Number of rows in a generated grid")
	cols := flag.Int("cols", xmas.DefaultGridSize, "Number of columns in a generated grid")
	n := flag.Int("n", 8, "Number of occurrences to plant in a generated grid")
	seed := flag.Int64("seed", 0, "Random seed for generation (0 uses the clock)")
	quiet := flag.Bool("q", false, "Suppress output of the grid itself")
	flag.Parse()

	linear := *mode == "linear" || *mode == "both"
	cross := *mode == "cross" || *mode == "both"
	if !linear && !cross {
		fmt.Printf("Unknown mode '%v'. Specify one of 'linear', 'cross' or 'both'.\n", *mode)
		os.Exit(1)
	}

	if *file != "" {
		// Scan a grid file, streaming it row by row
		if linear {
			count, err := countFile(*file, *word, false)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%v: %v occurrences of '%v' in all directions.\n",
				*file, count, *word)
		}
		if cross {
			count, err := countFile(*file, *word, true)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%v: %v X shapes of crossing '%v' arms.\n",
				*file, count, xmas.CrossArmWord)
		}
		return
	}

	// No file given: generate a random grid and scan that
	gen, err := xmas.NewGenerator(xmas.GeneratorParams{
		Word:       *word,
		Rows:       *rows,
		Cols:       *cols,
		Placements: *n,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	gridRows, planted := gen.Generate()
	if !*quiet {
		for _, row := range gridRows {
			fmt.Println(row)
		}
		fmt.Println()
	}
	fmt.Printf("Generated a %vx%v grid with %v planted occurrences of '%v'.\n",
		*rows, *cols, planted, *word)
	if linear {
		fmt.Printf("%v occurrences of '%v' in all directions.\n",
			countRows(gridRows, *word, false), *word)
	}
	if cross {
		fmt.Printf("%v X shapes of crossing '%v' arms.\n",
			countRows(gridRows, *word, true), xmas.CrossArmWord)
	}
}
