package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solution counter.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

var errBadLimit = errors.New("solver: limit must be >= 1")

// CountSolutions counts distinct completions of g in row-major DFS order,
// abandoning the search once count reaches limit. The grid is copied on
// entry (domain.Grid has value semantics), so the caller's grid is never
// touched. Recursion depth is bounded by the number of blanks (<= 81).
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	if limit < 1 {
		return 0, ports.Stats{}, errBadLimit
	}
	start := time.Now()
	grid := g
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	if err := ctx.Err(); err != nil {
		return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// --- helpers shared with the DLX counter's given checks ---

func isValid(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := domain.BoxOrigin(r, c)
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
