// Package dlx implements Knuth's Dancing Links (Algorithm X) for the
// 9x9 Sudoku exact-cover problem.
//
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c) occupied
//          81..161 -> row r has number v
//          162..242-> col c has number v
//          243..323-> box b has number v, b = (r/3)*3 + (c/3)
package dlx

import (
	"fmt"

	"svw.info/dlxsudoku/internal/domain"
)

const (
	nSize     = 9
	nCells    = nSize * nSize  // 81
	nCols     = 4 * nCells     // 324
	nRows     = nCells * nSize // 729 (r,c,v)
	colCell   = 0
	colRowNum = 81
	colColNum = 162
	colBoxNum = 243
)

// placement identifies the candidate a data node's row stands for.
type placement struct {
	row, col int
	val      uint8
}

// node is one "1" entry of the boolean constraint matrix: a membership of
// one candidate row in one constraint column. Once the matrix is built every
// node has all four neighbors; a nil link means corruption, not emptiness.
type node struct {
	left, right, up, down *node
	col                   *column
	place                 placement // zero for column headers
}

// column is a constraint header: a node plus the live row count for its
// vertical cycle. size is authoritative and only mutated by construction
// and cover/uncover.
type column struct {
	node
	name   string
	size   int
	active bool // linked into the horizontal header ring
}

// Matrix is the full dancing-links structure: root sentinel, 324 headers and
// 2916 data nodes. It is single-owner: one build, at most one solve.
type Matrix struct {
	root    *column
	cols    [nCols]*column
	rowHead [nRows]*node

	solution []*node // selected rows, seeded givens first
	nodes    int     // branch counter for stats and the optional budget

	// MaxNodes bounds the search when non-zero. Sudoku never needs it;
	// it guards against pathological non-Sudoku misuse of the core.
	MaxNodes int
}

func newHeader(name string) *column {
	c := &column{name: name, active: true}
	c.left = &c.node
	c.right = &c.node
	c.up = &c.node
	c.down = &c.node
	c.col = c
	return c
}

// linkRight inserts n immediately to the right of prev in a circular row.
// Construction-time only; later horizontal mutation goes through cover/uncover.
func linkRight(prev, n *node) {
	n.left = prev
	n.right = prev.right
	prev.right.left = n
	prev.right = n
}

// linkDown inserts n immediately below prev in a circular column.
func linkDown(prev, n *node) {
	n.up = prev
	n.down = prev.down
	prev.down.up = n
	prev.down = n
}

// colName follows the classic diagnostic scheme: R1C1 for cell constraints,
// R1#1 / C1#1 / B1#1 for row, column and box digit constraints.
func colName(i int) string {
	switch {
	case i < colRowNum:
		return fmt.Sprintf("R%dC%d", i/nSize+1, i%nSize+1)
	case i < colColNum:
		i -= colRowNum
		return fmt.Sprintf("R%d#%d", i/nSize+1, i%nSize+1)
	case i < colBoxNum:
		i -= colColNum
		return fmt.Sprintf("C%d#%d", i/nSize+1, i%nSize+1)
	default:
		i -= colBoxNum
		return fmt.Sprintf("B%d#%d", i/nSize+1, i%nSize+1)
	}
}

func rowIndex(r, c int, v uint8) int {
	return (r*nSize+c)*nSize + int(v) - 1 // 0..728
}

func rowColumns(r, c int, v uint8) [4]int {
	d := int(v) - 1
	cell := colCell + r*nSize + c
	rowN := colRowNum + r*nSize + d
	colN := colColNum + c*nSize + d
	box := (r/3)*3 + c/3
	boxN := colBoxNum + box*nSize + d
	return [4]int{cell, rowN, colN, boxN}
}

// New builds a fresh, fully linked matrix for the 9x9x9 Sudoku domain.
// Every header ends with size 9: exactly nine candidates satisfy each
// constraint.
func New() *Matrix {
	m := &Matrix{root: newHeader("h")}

	// header ring, fixed family order: cells, row digits, col digits, box digits
	prev := &m.root.node
	for i := 0; i < nCols; i++ {
		c := newHeader(colName(i))
		linkRight(prev, &c.node)
		m.cols[i] = c
		prev = &c.node
	}

	// 729 candidate rows of four nodes each, appended at column bottoms so
	// vertical order matches construction order
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := uint8(1); v <= nSize; v++ {
				p := placement{row: r, col: c, val: v}
				var first, last *node
				for _, id := range rowColumns(r, c, v) {
					col := m.cols[id]
					n := &node{col: col, place: p}
					linkDown(col.up, n)
					col.size++
					if first == nil {
						n.left = n
						n.right = n
						first = n
					} else {
						linkRight(last, n)
					}
					last = n
				}
				m.rowHead[rowIndex(r, c, v)] = first
			}
		}
	}
	m.solution = make([]*node, 0, nCells)
	return m
}

// Nodes returns the number of row branches taken so far.
func (m *Matrix) Nodes() int { return m.nodes }

// Decode materializes the current solution as a grid. Unselected cells stay
// empty; a complete exact cover fills all 81.
func (m *Matrix) Decode() domain.Grid {
	var g domain.Grid
	for _, n := range m.solution {
		g[n.place.row*nSize+n.place.col] = n.place.val
	}
	return g
}
