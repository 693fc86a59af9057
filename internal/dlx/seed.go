package dlx

import "svw.info/dlxsudoku/internal/domain"

// Place commits the candidate (row, col, v) before search starts, exactly as
// the search engine would for a chosen row: cover its four columns and record
// the row in the running solution. If any of those columns is already covered
// the clue contradicts an earlier one and a ConflictError is returned; the
// matrix must then be discarded.
func (m *Matrix) Place(row, col int, v uint8) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return domain.ErrOutOfBounds
	}
	if v < 1 || v > 9 {
		return domain.ErrValueRange
	}
	head := m.rowHead[rowIndex(row, col, v)]

	// A row eliminated by an earlier clue always lost one of its own four
	// columns, so checking the headers is sufficient.
	for j := head; ; {
		if !j.col.active {
			return &ConflictError{Row: row, Col: col, Value: v, Column: j.col.name}
		}
		if j = j.right; j == head {
			break
		}
	}
	for j := head; ; {
		m.cover(j.col)
		if j = j.right; j == head {
			break
		}
	}
	m.solution = append(m.solution, head)
	return nil
}

// Seed commits every non-empty cell of g as a given clue, in row-major order.
// On the first conflicting clue it stops with a ConflictError and no search
// may run on this matrix.
func (m *Matrix) Seed(g domain.Grid) error {
	for i, v := range g {
		if v == 0 {
			continue
		}
		if err := m.Place(i/nSize, i%nSize, v); err != nil {
			return err
		}
	}
	return nil
}
