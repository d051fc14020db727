package domain

// Puzzle is a finished Sudoku: the clue grid, its full solution, and
// grading metadata. A Puzzle is built once (by the generator or loaded
// from storage) and read-only afterwards; validation never mutates it.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Initial    Grid       `json:"initial_grid"`
	Solution   Grid       `json:"solution_grid"`
	Difficulty Difficulty `json:"difficulty"`
	ClueCount  int        `json:"clue_count"`
	Symmetry   Symmetry   `json:"symmetry"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// ReportStats carries the advisory metadata gathered during validation.
type ReportStats struct {
	ClueCount      int        `json:"clue_count"`
	Symmetry       Symmetry   `json:"symmetry"`
	Difficulty     Difficulty `json:"estimated_difficulty"`
	AppearsMinimal bool       `json:"appears_minimal"`
	// MinimalitySample is the number of clues actually probed by the
	// minimality audit, so consumers can judge the confidence of
	// AppearsMinimal. It is a sampling heuristic, not a proof.
	MinimalitySample int `json:"minimality_sample"`
}

// ValidationReport is the aggregate outcome of every check run against one
// puzzle. Checks never short-circuit: all findings land in the same report.
type ValidationReport struct {
	PuzzleID string      `json:"puzzle_id,omitempty"`
	Valid    bool        `json:"valid"`
	Errors   []string    `json:"errors"`
	Warnings []string    `json:"warnings"`
	Stats    ReportStats `json:"stats"`
}

// BatchSummary aggregates the reports for a whole collection.
type BatchSummary struct {
	TotalPuzzles   int                `json:"total_puzzles"`
	ValidPuzzles   int                `json:"valid_puzzles"`
	InvalidPuzzles int                `json:"invalid_puzzles"`
	TotalErrors    int                `json:"total_errors"`
	TotalWarnings  int                `json:"total_warnings"`
	Reports        []ValidationReport `json:"reports"`
}
