// server.go
//
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements compact HTTP request handlers that receive
// JSON encoded requests and return JSON encoded responses, backed
// by a small LRU cache of scan results for repeated grids.

package xmas

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"unicode"

	"github.com/hashicorp/golang-lru/simplelru"
)

// Caps on the dimensions of a grid accepted over HTTP
const (
	MaxGridRows = 1024
	MaxGridCols = 1024
)

// Variant identifiers accepted in scan requests
const (
	VariantLinear = "linear"
	VariantCross  = "cross"
)

// scanCache encapsulates a simple LRU cached map of request
// digests to scan results
type scanCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// Cached results of recent scan requests
var resultCache scanCache

func init() {
	resultCache.Init(256)
}

// Init initializes an empty scanCache
func (cache *scanCache) Init(size int) {
	cache.lru, _ = simplelru.NewLRU(size, nil)
}

// Lookup returns the scan result associated with a request
// digest. If the digest is found in the cache, its result is
// returned immediately. Otherwise, the given fetchFunc() is
// called to run the scan before storing the result in the cache.
func (cache *scanCache) Lookup(key string, fetchFunc func() int) int {
	cache.mux.Lock()
	defer cache.mux.Unlock()
	if count, ok := cache.lru.Get(key); ok {
		return count.(int)
	}
	count := fetchFunc()
	cache.lru.Add(key, count)
	return count
}

// digest produces the cache key of a scan request
func digest(variant string, word string, rows []string) string {
	h := sha256.New()
	h.Write([]byte(variant))
	h.Write([]byte{0})
	h.Write([]byte(word))
	h.Write([]byte{0})
	for _, row := range rows {
		h.Write([]byte(row))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// newPuzzleID returns a fresh random identifier for a generated
// puzzle
func newPuzzleID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// A class describing incoming scan requests
type CountRequest struct {
	Variant string   `json:"variant"`
	Word    string   `json:"word"`
	Rows    []string `json:"rows"`
}

// The JSON response to a scan request
type CountResponse struct {
	Version string `json:"version"`
	Variant string `json:"variant"`
	Word    string `json:"word"`
	Rows    int    `json:"rows"`
	Count   int    `json:"count"`
}

// A class describing incoming generation requests
type GenerateRequest struct {
	Word       string `json:"word"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Placements int    `json:"placements"`
	Seed       int64  `json:"seed"`
}

// The JSON response to a generation request. The cross count is
// always that of the canonical X-MAS shape, regardless of the
// planted word.
type GenerateResponse struct {
	Version     string   `json:"version"`
	Id          string   `json:"id"`
	Word        string   `json:"word"`
	Rows        []string `json:"rows"`
	Planted     int      `json:"planted"`
	LinearCount int      `json:"linear_count"`
	CrossCount  int      `json:"cross_count"`
}

// validateWord checks that a word consists of letters only,
// returning an empty string if it is acceptable
func validateWord(word string) string {
	if word == "" {
		return "Missing word.\n"
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return fmt.Sprintf("Invalid character '%c' in word.\n", r)
		}
	}
	return ""
}

// validateGrid checks the dimensions of an incoming grid,
// returning an empty string if it is acceptable
func validateGrid(rows []string) string {
	if len(rows) == 0 {
		return "Missing grid rows.\n"
	}
	if len(rows) > MaxGridRows {
		return fmt.Sprintf("Too many grid rows. The maximum is %v.\n", MaxGridRows)
	}
	for i, row := range rows {
		length := len([]rune(row))
		if length == 0 {
			return fmt.Sprintf("Invalid empty row (#%v).\n", i)
		}
		if length > MaxGridCols {
			return fmt.Sprintf("Invalid row (#%v). The maximum length is %v.\n",
				i, MaxGridCols)
		}
	}
	return ""
}

// HandleCountRequest scans the grid carried in the request and
// responds with the resulting match count. Results of identical
// requests are served from an LRU cache.
func HandleCountRequest(w http.ResponseWriter, req CountRequest) {
	variant := req.Variant
	if variant == "" {
		variant = VariantLinear
	}
	if variant != VariantLinear && variant != VariantCross {
		msg := "Invalid variant. Must be 'linear' or 'cross'.\n"
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	word := req.Word
	if word == "" {
		if variant == VariantCross {
			word = CrossArmWord
		} else {
			word = LinearWord
		}
	}
	if msg := validateWord(word); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if msg := validateGrid(req.Rows); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	count := resultCache.Lookup(digest(variant, word, req.Rows), func() int {
		var scan *Scan
		if variant == VariantCross {
			scan = NewCrossScan(word)
		} else {
			scan = NewLinearScan(word)
		}
		// A row source cannot fail, so neither can the scan
		n, _ := scan.Count(NewRowSource(req.Rows...))
		return n
	})

	// Return the result as JSON
	result := CountResponse{
		Version: "1.0",
		Variant: variant,
		Word:    word,
		Rows:    len(req.Rows),
		Count:   count,
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleGenerateRequest generates a random grid with the
// requested word planted in it, scans the result with both
// matching policies, and responds with the grid and its counts.
func HandleGenerateRequest(w http.ResponseWriter, req GenerateRequest) {
	word := req.Word
	if word == "" {
		word = LinearWord
	}
	if msg := validateWord(word); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	rows, cols := req.Rows, req.Cols
	if rows == 0 {
		rows = DefaultGridSize
	}
	if cols == 0 {
		cols = DefaultGridSize
	}
	if rows > MaxGridRows || cols > MaxGridCols {
		msg := fmt.Sprintf("Grid too large. The maximum is %vx%v.\n",
			MaxGridRows, MaxGridCols)
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	placements := req.Placements
	if placements == 0 {
		// Default to about one planted word per sixteen cells
		placements = rows*cols/16 + 1
	}

	gen, err := NewGenerator(GeneratorParams{
		Word:       word,
		Rows:       rows,
		Cols:       cols,
		Placements: placements,
		Seed:       req.Seed,
	})
	if err != nil {
		http.Error(w, err.Error()+"\n", http.StatusBadRequest)
		return
	}
	gridRows, planted := gen.Generate()
	linearCount, _ := NewLinearScan(word).Count(NewRowSource(gridRows...))
	crossCount, _ := CountCrossPattern(NewRowSource(gridRows...))

	// Return the result as JSON
	result := GenerateResponse{
		Version:     "1.0",
		Id:          newPuzzleID(),
		Word:        word,
		Rows:        gridRows,
		Planted:     planted,
		LinearCount: linearCount,
		CrossCount:  crossCount,
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
