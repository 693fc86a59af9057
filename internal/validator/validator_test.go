package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dlxsudoku/internal/domain"
)

var validCells = []uint8{
	7, 9, 6, 5, 8, 1, 4, 2, 3,
	2, 4, 1, 9, 3, 7, 5, 6, 8,
	8, 3, 5, 6, 2, 4, 9, 1, 7,
	6, 8, 7, 3, 5, 2, 1, 4, 9,
	4, 1, 9, 8, 7, 6, 3, 5, 2,
	3, 5, 2, 4, 1, 9, 7, 8, 6,
	1, 7, 8, 2, 4, 3, 6, 9, 5,
	5, 6, 3, 1, 9, 8, 2, 7, 4,
	9, 2, 4, 7, 6, 5, 8, 3, 1,
}

func TestValidateCompleteBoard(t *testing.T) {
	g, err := domain.FromCells(validCells)
	require.NoError(t, err)
	ok, conflicts, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
	require.True(t, Completed(g))
}

func TestValidateTamperedBoard(t *testing.T) {
	g, err := domain.FromCells(validCells)
	require.NoError(t, err)
	g[0] = 1 // duplicates the 1 already in row 0 and column 0
	ok, conflicts, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	require.False(t, ok)
	require.NotEmpty(t, conflicts)
	require.False(t, Completed(g))
}

func TestValidateEmptyBoard(t *testing.T) {
	var g domain.Grid
	ok, conflicts, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok, "empty cells never conflict")
	require.Empty(t, conflicts)
	require.False(t, Completed(g), "an empty board is not a finished one")
}

func TestValidateReportsConflictCoords(t *testing.T) {
	var g domain.Grid
	g.Set(3, 2, 5)
	g.Set(3, 7, 5) // row conflict
	ok, conflicts, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, conflicts, domain.CellCoord{Row: 3, Col: 7})
}
