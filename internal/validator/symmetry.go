package validator

import "svw.info/sudoku-audit/internal/domain"

// ClassifySymmetry determines the geometric symmetry of the clue layout.
// Tests run in priority order and the first one that every clue satisfies
// wins: 180° rotation, horizontal reflection, vertical reflection,
// diagonal reflection. Values are ignored; only positions matter.
func ClassifySymmetry(g *domain.Grid) domain.Symmetry {
	switch {
	case holdsForAllClues(g, func(r, c int) (int, int) { return 8 - r, 8 - c }):
		return domain.Rotational180
	case holdsForAllClues(g, func(r, c int) (int, int) { return 8 - r, c }):
		return domain.Horizontal
	case holdsForAllClues(g, func(r, c int) (int, int) { return r, 8 - c }):
		return domain.Vertical
	case holdsForAllClues(g, func(r, c int) (int, int) { return c, r }):
		return domain.Diagonal
	default:
		return domain.NoSymmetry
	}
}

// holdsForAllClues reports whether the image of every clue position under
// mirror is also a clue position.
func holdsForAllClues(g *domain.Grid, mirror func(r, c int) (int, int)) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				continue
			}
			mr, mc := mirror(r, c)
			if g[mr][mc] == 0 {
				return false
			}
		}
	}
	return true
}
