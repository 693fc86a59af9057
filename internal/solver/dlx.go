package solver

import (
	"context"
	"time"

	"svw.info/dlxsudoku/internal/dlx"
	"svw.info/dlxsudoku/internal/domain"
	"svw.info/dlxsudoku/internal/logger"
	"svw.info/dlxsudoku/internal/ports"
)

// DLXSolver solves via exact cover: build a fresh matrix, commit the givens,
// run Algorithm X, decode the first solution. Each call owns its own matrix,
// so a failed seed or search never leaks state into the next call.
type DLXSolver struct {
	// MaxNodes caps the search when non-zero; passed through to the matrix.
	MaxNodes int
}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

func (s *DLXSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	m := dlx.New()
	m.MaxNodes = s.MaxNodes
	if err := m.Seed(g); err != nil {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := m.Solve(ctx); err != nil {
		return domain.Grid{}, ports.Stats{Nodes: m.Nodes(), Duration: time.Since(start)}, err
	}
	out := m.Decode()
	st := ports.Stats{Nodes: m.Nodes(), Duration: time.Since(start)}
	log := logger.Logger()
	log.Debug().
		Int("givens", g.Givens()).
		Int("nodes", st.Nodes).
		Dur("took", st.Duration).
		Msg("dlx solve")
	return out, st, nil
}
