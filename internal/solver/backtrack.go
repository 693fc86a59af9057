package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/dlxsudoku/internal/domain"
	"svw.info/dlxsudoku/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver, kept as a
// cross-check and fallback for the DLX engine.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func isValid(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g.At(r, i) == v || g.At(i, c) == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g.At(br+dr, bc+dc) == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for i, v := range g {
		if v == 0 {
			return i / 9, i % 9, true
		}
	}
	return 0, 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := g
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid.Set(r, c, v)
				if dfs() {
					return true
				}
				grid.Set(r, c, 0)
			}
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("unsolvable board")
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
