package validator

import (
	"context"
	"math/rand"

	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
)

// DefaultMinimalitySample is how many clues the audit probes by default.
const DefaultMinimalitySample = 5

// AuditMinimality samples up to sampleSize clue positions without
// repetition, blanks each in a working copy, and re-counts solutions with
// limit 2. If any removal still leaves exactly one solution the removed
// clue was redundant and the puzzle is not minimal; sampling stops there.
// This is a heuristic: the returned sampled count tells callers how many
// clues were actually probed.
func AuditMinimality(ctx context.Context, s ports.Solver, g domain.Grid, sampleSize int, rng *rand.Rand) (appearsMinimal bool, sampled int, err error) {
	coords := g.ClueCoords()
	if sampleSize <= 0 {
		sampleSize = DefaultMinimalitySample
	}
	if sampleSize > len(coords) {
		sampleSize = len(coords)
	}
	for _, i := range rng.Perm(len(coords))[:sampleSize] {
		cc := coords[i]
		sampled++
		work := g
		work[cc.Row][cc.Col] = 0
		n, _, cerr := s.CountSolutions(ctx, work, 2)
		if cerr != nil {
			return false, sampled, cerr
		}
		if n == 1 {
			// Removing this clue kept the solution unique, so the
			// clue carried no information.
			return false, sampled, nil
		}
	}
	return true, sampled, nil
}
