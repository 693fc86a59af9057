package ports

import (
	"context"
	"time"

	"svw.info/dlxsudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a partially filled grid, or reports why it cannot.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
}

// Generator creates new puzzles at a target difficulty, deterministic per seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
