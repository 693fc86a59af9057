package dlx

import (
	"context"
	"errors"
)

// Solve runs Algorithm X to the first solution. On success the selected rows
// (after any seeded givens) are available through Decode. ErrInfeasible means
// the search space is exhausted; ctx and budget errors abort mid-search. In
// every failure case the matrix should be discarded.
func (m *Matrix) Solve(ctx context.Context) error {
	return m.search(ctx)
}

// choose scans the header ring for the column with minimum size (MRV). Ties
// break on ring order, which keeps the search fully deterministic. A zero-size
// column short-circuits the scan: the branch is already dead.
func (m *Matrix) choose() *column {
	best := m.root.right.col
	for p := m.root.right; p != &m.root.node; p = p.right {
		if c := p.col; c.size < best.size {
			best = c
			if c.size == 0 {
				break
			}
		}
	}
	return best
}

func (m *Matrix) search(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.MaxNodes > 0 && m.nodes >= m.MaxNodes {
		return ErrBudgetExceeded
	}
	// every constraint covered exactly once
	if m.root.right == &m.root.node {
		return nil
	}

	c := m.choose()
	if c.size == 0 {
		return ErrInfeasible
	}
	m.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		m.nodes++
		m.solution = append(m.solution, r)
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		err := m.search(ctx)
		if err == nil {
			// first solution wins; no restoration on the way out
			return nil
		}
		if !errors.Is(err, ErrInfeasible) {
			return err
		}
		m.solution = m.solution[:len(m.solution)-1]
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
	}
	m.uncover(c)
	return ErrInfeasible
}
