// go-app/main.go
// App Engine main package for the GoXmas server
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"

	xmas "github.com/vthorsteinsson/GoXmas"
)

// Bearer authorization token, if any
var ACCESS_KEY string

// Corresponding Authorization header (or "" if no auth required)
var AUTH_HEADER string

// Allowed access control (CORS) origins
var ALLOWED_ORIGINS string = "*" // Default to all origins allowed

// Daily puzzle store; nil if no Datastore project is configured
var puzzleStore *xmas.PuzzleStore

// Parameters of the daily puzzle
const (
	dailyWord       = xmas.LinearWord
	dailyRows       = 20
	dailyCols       = 20
	dailyPlacements = 24
)

func validate(w http.ResponseWriter, r *http.Request, req any) bool {
	// Set CORS headers
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", ALLOWED_ORIGINS)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle preflight OPTIONS request
	if r.Method == "OPTIONS" {
		// Returning false simply causes the handler to return the response headers
		return false
	}

	// We only accept POST requests
	if r.Method != "POST" {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}
	// Check for a bearer authorization token,
	// which must match the environment variable
	// ACCESS_KEY, if present
	if AUTH_HEADER != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != AUTH_HEADER {
			http.Error(w,
				fmt.Sprintf(
					"Authorization header mismatch: got '%s'",
					authHeader,
				),
				http.StatusUnauthorized,
			)
			return false
		}
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		// Not valid JSON
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func countHandler(w http.ResponseWriter, r *http.Request) {
	var req xmas.CountRequest
	if !validate(w, r, &req) {
		return
	}
	xmas.HandleCountRequest(w, req)
}

func generateHandler(w http.ResponseWriter, r *http.Request) {
	var req xmas.GenerateRequest
	if !validate(w, r, &req) {
		return
	}
	xmas.HandleGenerateRequest(w, req)
}

// A dailyRequest optionally names the date whose puzzle is wanted
type dailyRequest struct {
	Date string `json:"date"`
}

// makeDailyPuzzle generates the puzzle of the given date. The
// random seed is derived from the date, so every instance
// generates the same puzzle for the same day.
func makeDailyPuzzle(date string) *xmas.DailyPuzzle {
	var seed int64
	for _, r := range date {
		seed = seed*31 + int64(r)
	}
	gen, err := xmas.NewGenerator(xmas.GeneratorParams{
		Word:       dailyWord,
		Rows:       dailyRows,
		Cols:       dailyCols,
		Placements: dailyPlacements,
		Seed:       seed,
	})
	if err != nil {
		// The daily parameters are constants, so this cannot happen
		panic(err)
	}
	rows, planted := gen.Generate()
	linearCount, _ := xmas.CountLinearWord(xmas.NewRowSource(rows...))
	crossCount, _ := xmas.CountCrossPattern(xmas.NewRowSource(rows...))
	return &xmas.DailyPuzzle{
		Word:        dailyWord,
		Rows:        rows,
		Planted:     planted,
		LinearCount: linearCount,
		CrossCount:  crossCount,
	}
}

func dailyHandler(w http.ResponseWriter, r *http.Request) {
	var req dailyRequest
	if !validate(w, r, &req) {
		return
	}
	if puzzleStore == nil {
		http.Error(w, "No puzzle store configured", http.StatusServiceUnavailable)
		return
	}
	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date. Must be YYYY-MM-DD.\n", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	puzzle, err := puzzleStore.Fetch(ctx, date, func() *xmas.DailyPuzzle {
		return makeDailyPuzzle(date)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(puzzle); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func warmupHandler(w http.ResponseWriter, r *http.Request) {
	// No concrete action required
	log.Println("Warmup request received")
}

func main() {
	// Log to Google App Engine
	log.SetOutput(os.Stderr)
	log.Printf("Word search service starting, Go version %s", runtime.Version())
	// Load environment variables from a .env file, if present
	if err := godotenv.Load(); err == nil {
		log.Printf("Environment loaded from .env file")
	}
	// Figure out the authorization header, if required
	ACCESS_KEY = os.Getenv("ACCESS_KEY")
	if ACCESS_KEY != "" {
		AUTH_HEADER = "Bearer " + ACCESS_KEY
	}
	// Connect to the Datastore project for daily puzzles, if configured
	projectID := os.Getenv("PROJECT_ID")
	if projectID != "" {
		store, err := xmas.NewPuzzleStore(context.Background(), projectID)
		if err != nil {
			log.Fatalf("Could not connect to Datastore project %s: %v", projectID, err)
		}
		puzzleStore = store
		defer store.Close()
		log.Printf("Daily puzzles stored in Datastore project %s", projectID)
	} else {
		log.Printf("No PROJECT_ID specified, daily puzzles disabled")
	}
	// Set up a dummy warmup handler
	http.HandleFunc("/_ah/warmup", warmupHandler)
	// Set up the actual service handlers
	http.HandleFunc("/count", countHandler)
	http.HandleFunc("/generate", generateHandler)
	http.HandleFunc("/daily", dailyHandler)
	// Establish the port number to listen on, defaulting to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on port %s", port)
	// Establish allowed CORS origins
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins != "" {
		log.Printf("Allowed CORS origins: %s", origins)
		ALLOWED_ORIGINS = origins
	} else {
		log.Printf("No ALLOWED_ORIGINS specified, allowing all")
	}
	// Start the server loop
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
