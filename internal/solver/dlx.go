package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-audit/internal/domain"
	"svw.info/sudoku-audit/internal/ports"
)

// DLXSolver counts solutions via Algorithm X / Dancing Links.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c)
//          81..161 -> row r has number v
//          162..242-> col c has number v
//          243..323-> box b has number v, b = (r/3)*3 + (c/3)
//
// It implements the same counting contract as BacktrackingSolver and is
// used to cross-check uniqueness results from an independent algorithm.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	nSize  = 9
	nCells = nSize * nSize // 81
	nCols  = 4 * nCells    // 324
	nRows  = nCells * nSize // 729 (r,c,v)

	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int // 0..728 identifies (r,c,v)
}

type column struct {
	node
	size   int
	name   int
	active bool
}

type dlx struct {
	cols      [nCols]*column
	rowHead   [nRows]*node
	nodes     int
	activeCnt int
}

func newDLX() *dlx {
	d := &dlx{}
	for i := 0; i < nCols; i++ {
		c := &column{name: i, active: true}
		c.up = &c.node
		c.down = &c.node
		d.cols[i] = c
	}
	d.activeCnt = nCols

	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := 1; v <= nSize; v++ {
				row := rowIndex(r, c, v)
				cols := rowColumns(r, c, v)
				var first, prev *node
				for _, colID := range cols {
					col := d.cols[colID]
					n := &node{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					n.down = &col.node
					n.up = col.node.up
					col.node.up.down = n
					col.node.up = n
					col.size++
					// horizontal ring linking the 4 nodes of the row
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func rowIndex(r, c, v int) int {
	return (r*nSize+c)*nSize + (v - 1)
}

func rowColumns(r, c, v int) [4]int {
	cell := colCell + r*nSize + c
	rowN := colRowNum + r*nSize + (v - 1)
	colN := colColNum + c*nSize + (v - 1)
	box := (r/3)*3 + (c / 3)
	boxN := colBoxNum + box*nSize + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func cover(col *column, d *dlx) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func uncover(col *column, d *dlx) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size (MRV).
func chooseColumn(d *dlx) *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) search(ctx context.Context, limit int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	if d.activeCnt == 0 {
		(*found)++
		return *found >= limit
	}

	c := chooseColumn(d)
	if c == nil || c.size == 0 {
		return false
	}
	cover(c, d)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				cover(j.col, d)
			}
		}
		if d.search(ctx, limit, found) {
			for j := r.left; j != r; j = j.left {
				uncover(j.col, d)
			}
			uncover(c, d)
			return true
		}
		for j := r.left; j != r; j = j.left {
			uncover(j.col, d)
		}
	}
	uncover(c, d)
	return false
}

// applyGiven selects the (r,c,v) row for a clue and covers its columns.
func (d *dlx) applyGiven(r, c, v int) error {
	head := d.rowHead[rowIndex(r, c, v)]
	if head == nil {
		return errors.New("invalid row mapping")
	}
	for j := head; ; j = j.right {
		cover(j.col, d)
		if j.right == head {
			break
		}
	}
	return nil
}

func (s *DLXSolver) CountSolutions(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	if limit < 1 {
		return 0, ports.Stats{}, errBadLimit
	}
	start := time.Now()
	d := newDLX()
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			if v := int(g[r][c]); v > 0 {
				if v > 9 {
					return 0, ports.Stats{}, errors.New("invalid given")
				}
				if err := d.applyGiven(r, c, v); err != nil {
					return 0, ports.Stats{}, err
				}
			}
		}
	}
	found := 0
	_ = d.search(ctx, limit, &found)
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return found, st, err
	}
	return found, st, nil
}
