package dlx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dlxsudoku/internal/domain"
)

func TestPlaceConflictSameCell(t *testing.T) {
	m := New()
	require.NoError(t, m.Place(0, 0, 1))

	err := m.Place(0, 0, 2)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, 0, conflict.Row)
	require.Equal(t, 0, conflict.Col)
	require.Equal(t, uint8(2), conflict.Value)
	require.Equal(t, "R1C1", conflict.Column)
	require.Zero(t, m.Nodes(), "conflict must surface before any search branch")
}

func TestSeedConflictDuplicateInRow(t *testing.T) {
	var g domain.Grid
	g.Set(0, 0, 1)
	g.Set(0, 5, 1)

	m := New()
	err := m.Seed(g)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "R1#1", conflict.Column)
	require.Zero(t, m.Nodes())
}

func TestSeedConflictDuplicateInBox(t *testing.T) {
	var g domain.Grid
	g.Set(0, 0, 7)
	g.Set(2, 2, 7) // same 3x3 box, different row and column

	m := New()
	var conflict *ConflictError
	require.ErrorAs(t, m.Seed(g), &conflict)
	require.Equal(t, "B1#7", conflict.Column)
}

func TestPlaceRejectsBadInput(t *testing.T) {
	m := New()
	require.ErrorIs(t, m.Place(0, 0, 0), domain.ErrValueRange)
	require.ErrorIs(t, m.Place(0, 0, 10), domain.ErrValueRange)
	require.ErrorIs(t, m.Place(-1, 0, 5), domain.ErrOutOfBounds)
	require.ErrorIs(t, m.Place(0, 9, 5), domain.ErrOutOfBounds)
}

func TestSeedCommitsGivensIntoSolution(t *testing.T) {
	g := mustGrid(t, samplePuzzle)
	m := New()
	require.NoError(t, m.Seed(g))
	require.Equal(t, g, m.Decode(), "seeded rows alone must decode back to the givens")
	require.NoError(t, m.Check(), "seeding must leave a structurally sound matrix")
}

func TestSeedEmptyGridIsNoop(t *testing.T) {
	m := New()
	require.NoError(t, m.Seed(domain.Grid{}))
	require.Equal(t, fingerprint(New()), fingerprint(m))
}
