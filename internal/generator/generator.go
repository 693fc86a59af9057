// Package generator produces deterministic boards: a seeded first-row
// permutation, exact-cover completion, then clue removal down to the
// difficulty target. The same seed always yields the same puzzle.
package generator

import (
	"context"
	"fmt"
	"time"

	"svw.info/dlxsudoku/internal/domain"
	"svw.info/dlxsudoku/internal/logger"
	"svw.info/dlxsudoku/internal/ports"
	"svw.info/dlxsudoku/internal/rng"
)

// SeedGenerator fills boards through a Solver, normally the DLX engine.
type SeedGenerator struct {
	Solver ports.Solver
}

func New(s ports.Solver) *SeedGenerator {
	return &SeedGenerator{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate builds a puzzle for seed and difficulty. Row 0 is seeded with the
// xorshift permutation of 1..9, the solver completes the rest, and shuffled
// positions are emptied until only the target number of givens remains.
func (g *SeedGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if g.Solver == nil {
		return nil, ports.Stats{}, fmt.Errorf("generator has no solver")
	}
	src := rng.New(uint32(seed))

	// 1) full solved board from the seeded first row
	var grid domain.Grid
	perm := src.Perm9()
	copy(grid[:9], perm[:])
	full, st, err := g.Solver.Solve(ctx, grid)
	if err != nil {
		return nil, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, fmt.Errorf("completing seed board: %w", err)
	}

	// 2) carve clues in shuffled position order
	puz := full
	var fixed [81]bool
	for i := range fixed {
		fixed[i] = true
	}
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	src.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	remove := 81 - targetGivens(diff)
	for _, pos := range positions[:remove] {
		puz[pos] = 0
		fixed[pos] = false
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Grid:       puz,
		Fixed:      fixed,
		CreatedAt:  time.Now().UnixNano(),
	}
	stats := ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}
	log := logger.Logger()
	log.Debug().
		Int64("seed", seed).
		Stringer("difficulty", diff).
		Int("givens", puz.Givens()).
		Dur("took", stats.Duration).
		Msg("generated puzzle")
	return p, stats, nil
}
