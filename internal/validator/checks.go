package validator

import (
	"fmt"

	"svw.info/sudoku-audit/internal/domain"
)

// Error code prefixes; every report entry starts with one of these.
const (
	CodeStructuralShape   = "StructuralShapeError"
	CodeValueRange        = "ValueRangeError"
	CodeSolutionInvalid   = "SolutionInvalid"
	CodeClueMismatch      = "ClueSolutionMismatch"
	CodeNoSolution        = "NoSolution"
	CodeMultipleSolutions = "MultipleSolutions"
	CodeInsufficientClues = "InsufficientClues"
	CodeAsymmetricLayout  = "AsymmetricLayout"
	CodeRedundantClues    = "PossiblyRedundantClues"
)

// MinClues is the proven lower bound on givens for a unique 9x9 Sudoku.
const MinClues = 17

// CheckStructure verifies shape and per-cell value ranges of raw grid
// data. allowBlanks is true for puzzle grids (0 legal) and false for
// solution grids. It reports every violation it finds; it never stops at
// the first offending row or cell.
func CheckStructure(label string, rows [][]int, allowBlanks bool) []string {
	var errs []string
	if len(rows) != 9 {
		errs = append(errs, fmt.Sprintf("%s: %s has %d rows, want 9", CodeStructuralShape, label, len(rows)))
	}
	lo := 1
	if allowBlanks {
		lo = 0
	}
	for r, row := range rows {
		if len(row) != 9 {
			errs = append(errs, fmt.Sprintf("%s: %s row %d has %d cells, want 9", CodeStructuralShape, label, r, len(row)))
		}
		for c, v := range row {
			if v < lo || v > 9 {
				errs = append(errs, fmt.Sprintf("%s: %s cell (%d,%d) value %d outside %d..9", CodeValueRange, label, r, c, v, lo))
			}
		}
	}
	return errs
}

// CheckSolution reports whether a fully filled grid satisfies all
// row, column, and box constraints: each unit holds exactly {1..9}.
// The scan uses one bitmask per unit; with 9 distinct values in 1..9 a
// full mask is equivalent to the exact-set condition.
func CheckSolution(g *domain.Grid) bool {
	const full = 0b1111111110 // bits 1..9 set
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			m |= 1 << g[r][c]
		}
		if m != full {
			return false
		}
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m |= 1 << g[r][c]
		}
		if m != full {
			return false
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					m |= 1 << g[br+dr][bc+dc]
				}
			}
			if m != full {
				return false
			}
		}
	}
	return true
}

// CheckConsistency verifies that every clue in the puzzle grid matches
// the paired solution grid, reporting one error per mismatching cell.
func CheckConsistency(initial, solution *domain.Grid) []string {
	var errs []string
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := initial[r][c]; v != 0 && v != solution[r][c] {
				errs = append(errs, fmt.Sprintf("%s: clue (%d,%d)=%d disagrees with solution value %d",
					CodeClueMismatch, r, c, v, solution[r][c]))
			}
		}
	}
	return errs
}
