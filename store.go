// store.go
//
// Copyright (C) 2026 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements persistence of generated puzzles in
// Google Cloud Datastore, one puzzle per calendar date.

package xmas

import (
	"context"
	"time"

	"cloud.google.com/go/datastore"
)

// The Datastore kind under which daily puzzles are stored
const puzzleKind = "DailyPuzzle"

// A DailyPuzzle is the generated puzzle of one calendar date
type DailyPuzzle struct {
	Date        string    `datastore:"date" json:"date"`
	Word        string    `datastore:"word,noindex" json:"word"`
	Rows        []string  `datastore:"rows,noindex" json:"rows"`
	Planted     int       `datastore:"planted,noindex" json:"planted"`
	LinearCount int       `datastore:"linearCount,noindex" json:"linear_count"`
	CrossCount  int       `datastore:"crossCount,noindex" json:"cross_count"`
	Created     time.Time `datastore:"created" json:"created"`
}

// A PuzzleStore stores and retrieves daily puzzles
type PuzzleStore struct {
	client *datastore.Client
}

// NewPuzzleStore connects to the Datastore of the given Google
// Cloud project
func NewPuzzleStore(ctx context.Context, projectID string) (*PuzzleStore, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &PuzzleStore{client: client}, nil
}

// Close releases the store's connection
func (store *PuzzleStore) Close() error {
	return store.client.Close()
}

// Fetch returns the puzzle of the given date, first generating
// and storing one if no puzzle exists yet for that date. The
// generate function is only invoked when a new puzzle is needed.
// The read-check-write runs in a transaction, so concurrent
// callers racing on the same date all receive the same stored
// puzzle.
func (store *PuzzleStore) Fetch(ctx context.Context, date string,
	generate func() *DailyPuzzle) (*DailyPuzzle, error) {

	key := datastore.NameKey(puzzleKind, date, nil)
	var puzzle DailyPuzzle
	_, err := store.client.RunInTransaction(ctx,
		func(tx *datastore.Transaction) error {
			err := tx.Get(key, &puzzle)
			if err == nil {
				// Already generated
				return nil
			}
			if err != datastore.ErrNoSuchEntity {
				return err
			}
			generated := generate()
			generated.Date = date
			generated.Created = time.Now().UTC()
			puzzle = *generated
			_, err = tx.Put(key, &puzzle)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return &puzzle, nil
}
