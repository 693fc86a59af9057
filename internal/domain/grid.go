package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Grid is a 9x9 board in row-major order: index i maps to cell (i/9, i%9).
// 0 marks an empty cell. This is the sole interchange format between the
// solver core and its collaborators.
type Grid [81]uint8

var (
	ErrValueRange  = errors.New("cell value out of range 0..9")
	ErrOutOfBounds = errors.New("cell coordinate out of range 0..8")
)

// FromCells builds a Grid from a raw 81-byte slice, rejecting values above 9.
func FromCells(cells []uint8) (Grid, error) {
	var g Grid
	if len(cells) != len(g) {
		return g, fmt.Errorf("expected %d cells, got %d", len(g), len(cells))
	}
	for i, v := range cells {
		if v > 9 {
			return Grid{}, fmt.Errorf("cell %d holds %d: %w", i, v, ErrValueRange)
		}
		g[i] = v
	}
	return g, nil
}

// ParseGrid reads an 81-character puzzle string, one digit per cell.
// '0' and '.' both denote an empty cell.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	if len(s) != len(g) {
		return g, fmt.Errorf("expected %d characters, got %d", len(g), len(s))
	}
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '.' || ch == '0':
			g[i] = 0
		case ch >= '1' && ch <= '9':
			g[i] = ch - '0'
		default:
			return Grid{}, fmt.Errorf("character %q at position %d: %w", ch, i, ErrValueRange)
		}
	}
	return g, nil
}

// At returns the value at (row, col).
func (g Grid) At(row, col int) uint8 { return g[row*9+col] }

// Set writes v at (row, col).
func (g *Grid) Set(row, col int, v uint8) { g[row*9+col] = v }

// Givens counts the non-empty cells.
func (g Grid) Givens() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// Full reports whether every cell holds a value.
func (g Grid) Full() bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	return true
}

// String renders the grid as a bordered text board, empty cells as spaces.
func (g Grid) String() string {
	var b strings.Builder
	rule := strings.Repeat("-", 37)
	b.WriteString(rule)
	b.WriteByte('\n')
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g.At(r, c); v == 0 {
				b.WriteString("|   ")
			} else {
				fmt.Fprintf(&b, "| %d ", v)
			}
		}
		b.WriteString("|\n")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// Compact renders the grid as an 81-character digit string, '0' for empty.
func (g Grid) Compact() string {
	buf := make([]byte, len(g))
	for i, v := range g {
		buf[i] = '0' + v
	}
	return string(buf)
}
