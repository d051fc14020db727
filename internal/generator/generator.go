// Package generator produces puzzles with a unique solution by carving
// clues out of a transformed canonical grid.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-audit/internal/difficulty"
	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
	"svw.info/sudoku-audit/internal/validator"
)

// UniqueGenerator builds a solved grid from the canonical base via
// validity-preserving permutations, then digs blanks while consulting the
// Solver so the puzzle keeps exactly one solution.
type UniqueGenerator struct {
	Solver     ports.Solver
	Thresholds difficulty.Thresholds
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s, Thresholds: difficulty.Default}
}

// Generate carves a puzzle down toward targetClues. If no further removal
// preserves uniqueness before the target is reached, the achieved puzzle
// is returned as-is; callers can compare ClueCount against their target.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, targetClues int) (*domain.Puzzle, ports.Stats, error) {
	if targetClues < validator.MinClues || targetClues > 81 {
		return nil, ports.Stats{}, fmt.Errorf("target clues %d outside %d..81", targetClues, validator.MinClues)
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full := ShuffledGrid(rng)
	puz := full
	clues := 81
	nodes := 0

	for _, pos := range rng.Perm(81) {
		if clues <= targetClues {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		n, st, err := g.Solver.CountSolutions(ctx, puz, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			puz[r][c] = old // removal broke uniqueness, put the clue back
		} else {
			clues--
		}
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Initial:    puz,
		Solution:   full,
		Difficulty: g.Thresholds.Estimate(clues),
		ClueCount:  clues,
		Symmetry:   validator.ClassifySymmetry(&puz),
		CreatedAt:  time.Now().Unix(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// BaseGrid is the canonical solved grid every generated puzzle descends
// from: row r is the base sequence shifted by 3r+r/3, which satisfies all
// row, column, and box constraints.
func BaseGrid() domain.Grid {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	return g
}

// ShuffledGrid randomizes the base grid with permutations that preserve
// validity by construction: the three row-bands among themselves, rows
// within each band, the three column-stacks among themselves, and columns
// within each stack. No re-validation is needed afterwards.
func ShuffledGrid(rng *rand.Rand) domain.Grid {
	g := BaseGrid()

	rowOrder := groupPerm(rng)
	colOrder := groupPerm(rng)

	var out domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = g[rowOrder[r]][colOrder[c]]
		}
	}
	return out
}

// groupPerm builds a permutation of 0..8 that moves the three bands (or
// stacks) as units and shuffles the three lines inside each.
func groupPerm(rng *rand.Rand) [9]int {
	bands := rng.Perm(3)
	var p [9]int
	for i, b := range bands {
		inner := rng.Perm(3)
		for j, k := range inner {
			p[i*3+j] = b*3 + k
		}
	}
	return p
}
