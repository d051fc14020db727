// Package reportdb persists batch validation results to SQLite so audit
// runs over large collections can be queried and compared later.
package reportdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"svw.info/sudoku-audit/internal/domain"
)

// Store handles SQLite operations for validation runs.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		source_dir TEXT NOT NULL,
		total_puzzles INTEGER NOT NULL,
		valid_puzzles INTEGER NOT NULL,
		invalid_puzzles INTEGER NOT NULL,
		total_errors INTEGER NOT NULL,
		total_warnings INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS reports (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		puzzle_id TEXT NOT NULL,
		valid INTEGER NOT NULL,
		clue_count INTEGER NOT NULL,
		symmetry TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		appears_minimal INTEGER NOT NULL,
		minimality_sample INTEGER NOT NULL,
		errors TEXT NOT NULL,
		warnings TEXT NOT NULL,
		PRIMARY KEY (run_id, puzzle_id)
	);`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun records a batch summary and its per-puzzle reports in one
// transaction, returning the new run id.
func (s *Store) SaveRun(ctx context.Context, sourceDir string, sum *domain.BatchSummary) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, source_dir, total_puzzles, valid_puzzles, invalid_puzzles, total_errors, total_warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), sourceDir, sum.TotalPuzzles, sum.ValidPuzzles, sum.InvalidPuzzles, sum.TotalErrors, sum.TotalWarnings)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i := range sum.Reports {
		r := &sum.Reports[i]
		errsJSON, _ := json.Marshal(r.Errors)
		warnsJSON, _ := json.Marshal(r.Warnings)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO reports (run_id, puzzle_id, valid, clue_count, symmetry, difficulty, appears_minimal, minimality_sample, errors, warnings)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.PuzzleID, r.Valid, r.Stats.ClueCount, r.Stats.Symmetry.String(), r.Stats.Difficulty.String(),
			r.Stats.AppearsMinimal, r.Stats.MinimalitySample, string(errsJSON), string(warnsJSON))
		if err != nil {
			return 0, fmt.Errorf("insert report %s: %w", r.PuzzleID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *Store) Close() error { return s.db.Close() }
