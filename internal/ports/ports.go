package ports

import (
	"context"
	"time"

	"svw.info/sudoku-audit/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver counts solutions of a grid, stopping as soon as limit is reached.
// Implementations work on their own copy of the grid and never mutate the
// caller's value, so concurrent counting over independent puzzles is safe.
type Solver interface {
	// CountSolutions returns the number of distinct completions of g,
	// capped at limit. limit must be >= 1; counting without a cap is
	// unsafe on sparse grids.
	CountSolutions(ctx context.Context, g domain.Grid, limit int) (int, Stats, error)
}

// Generator creates new puzzles with a unique solution at a target clue count.
type Generator interface {
	Generate(ctx context.Context, seed int64, targetClues int) (*domain.Puzzle, Stats, error)
}

// Storage reads and writes puzzle collections (manifest + records).
type Storage interface {
	LoadManifest(ctx context.Context) (Manifest, error)
	LoadRecord(ctx context.Context, id string) (*PuzzleRecord, error)
	SaveCollection(ctx context.Context, puzzles []*domain.Puzzle) error
}

// Manifest describes a puzzle collection on disk.
type Manifest struct {
	PuzzleCount int      `json:"puzzle_count"`
	Puzzles     []string `json:"puzzles"`
}

// PuzzleRecord is the raw per-puzzle metadata record, pre-validation.
// Grids stay as loosely shaped int rows so the structural validator can
// report wrong row/column counts instead of the decoder rejecting them.
type PuzzleRecord struct {
	ID         string  `json:"id,omitempty"`
	Initial    [][]int `json:"initial_grid"`
	Solution   [][]int `json:"solution_grid"`
	Difficulty string  `json:"difficulty,omitempty"`
}
