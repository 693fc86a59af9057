package domain

import "errors"

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	Fixed      [81]bool   `json:"fixed,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// ErrFixedCell rejects moves that would overwrite a given clue.
var ErrFixedCell = errors.New("cell is a fixed given")

// Apply writes a user move at (row, col). Givens cannot be changed;
// v == 0 erases a previous user entry.
func (p *Puzzle) Apply(row, col int, v uint8) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return ErrOutOfBounds
	}
	if v > 9 {
		return ErrValueRange
	}
	if p.Fixed[row*9+col] {
		return ErrFixedCell
	}
	p.Grid.Set(row, col, v)
	return nil
}
