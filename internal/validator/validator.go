// Package validator audits finished puzzles: structure, solution
// correctness, clue consistency, uniqueness, clue-count bound, symmetry,
// difficulty, and minimality, aggregated into one ValidationReport.
package validator

import (
	"context"
	"fmt"
	"math/rand"

	"svw.info/sudoku-audit/internal/difficulty"
	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
)

// Validator is the report-building façade. Every check always runs and
// contributes independently; no finding suppresses another. Validate
// never mutates the record it inspects, and repeated calls on the same
// record produce identical reports (the minimality sample is drawn from
// a fixed per-validator seed).
type Validator struct {
	Solver     ports.Solver
	Thresholds difficulty.Thresholds
	SampleSize int
	Seed       int64
}

func New(s ports.Solver) *Validator {
	return &Validator{
		Solver:     s,
		Thresholds: difficulty.Default,
		SampleSize: DefaultMinimalitySample,
		Seed:       1,
	}
}

// Validate runs every applicable check against a raw puzzle record and
// returns the aggregate report. Grid-level checks require both grids to
// be well-shaped; when the shape itself is broken only the structural
// findings are reported.
func (v *Validator) Validate(ctx context.Context, rec *ports.PuzzleRecord) domain.ValidationReport {
	rep := domain.ValidationReport{
		PuzzleID: rec.ID,
		Errors:   []string{},
		Warnings: []string{},
	}

	rep.Errors = append(rep.Errors, CheckStructure("initial_grid", rec.Initial, true)...)
	rep.Errors = append(rep.Errors, CheckStructure("solution_grid", rec.Solution, false)...)

	if !wellShaped(rec.Initial) || !wellShaped(rec.Solution) {
		rep.Valid = false
		return rep
	}

	initial := domain.GridFromRows(rec.Initial)
	solution := domain.GridFromRows(rec.Solution)

	if !CheckSolution(&solution) {
		rep.Errors = append(rep.Errors, fmt.Sprintf("%s: solution grid violates row/column/box constraints", CodeSolutionInvalid))
	}

	rep.Errors = append(rep.Errors, CheckConsistency(&initial, &solution)...)

	clueCount := initial.ClueCount()
	rep.Stats.ClueCount = clueCount
	if clueCount < MinClues {
		rep.Errors = append(rep.Errors, fmt.Sprintf("%s: %d clues, below the proven minimum of %d", CodeInsufficientClues, clueCount, MinClues))
	}

	switch n, _, err := v.Solver.CountSolutions(ctx, initial, 2); {
	case err != nil:
		rep.Errors = append(rep.Errors, fmt.Sprintf("solver aborted: %v", err))
	case n == 0:
		rep.Errors = append(rep.Errors, fmt.Sprintf("%s: puzzle has no solution", CodeNoSolution))
	case n >= 2:
		rep.Errors = append(rep.Errors, fmt.Sprintf("%s: puzzle has at least %d solutions", CodeMultipleSolutions, n))
	}

	rep.Stats.Symmetry = ClassifySymmetry(&initial)
	if rep.Stats.Symmetry == domain.NoSymmetry {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: clue layout has no recognized symmetry", CodeAsymmetricLayout))
	}

	rep.Stats.Difficulty = v.Thresholds.Estimate(clueCount)

	rng := rand.New(rand.NewSource(v.Seed))
	minimal, sampled, err := AuditMinimality(ctx, v.Solver, initial, v.SampleSize, rng)
	if err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("minimality audit aborted: %v", err))
	}
	rep.Stats.AppearsMinimal = minimal
	rep.Stats.MinimalitySample = sampled
	if err == nil && !minimal {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: a sampled clue (of %d probed) can be removed without losing uniqueness", CodeRedundantClues, sampled))
	}

	rep.Valid = len(rep.Errors) == 0
	return rep
}

func wellShaped(rows [][]int) bool {
	if len(rows) != 9 {
		return false
	}
	for _, row := range rows {
		if len(row) != 9 {
			return false
		}
	}
	return true
}
