package domain

// Grid is a 9x9 Sudoku grid. 0 marks a blank cell; blanks are legal in
// a puzzle grid but never in a solution grid. Grid is a value type:
// assignment copies all 81 cells, so working copies are free of aliasing.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoxOrigin returns the top-left cell of the 3x3 box containing (r, c).
func BoxOrigin(r, c int) (int, int) { return (r / 3) * 3, (c / 3) * 3 }

// ClueCount returns the number of non-blank cells.
func (g *Grid) ClueCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// ClueCoords returns the coordinates of all non-blank cells in row-major order.
func (g *Grid) ClueCoords() []CellCoord {
	coords := make([]CellCoord, 0, 32)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				coords = append(coords, CellCoord{Row: r, Col: c})
			}
		}
	}
	return coords
}

// GridFromRows converts raw row data into a Grid. It assumes the shape and
// value ranges were already checked (see validator.CheckStructure); cells
// outside 0..9 are clamped to 0 so a malformed record cannot smuggle an
// out-of-range value past the structural report.
func GridFromRows(rows [][]int) Grid {
	var g Grid
	for r := 0; r < 9 && r < len(rows); r++ {
		for c := 0; c < 9 && c < len(rows[r]); c++ {
			if v := rows[r][c]; v >= 1 && v <= 9 {
				g[r][c] = uint8(v)
			}
		}
	}
	return g
}

// Rows converts the grid back to the interchange representation.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, 9)
	for r := 0; r < 9; r++ {
		rows[r] = make([]int, 9)
		for c := 0; c < 9; c++ {
			rows[r][c] = int(g[r][c])
		}
	}
	return rows
}
