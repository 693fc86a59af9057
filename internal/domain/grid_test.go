package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGridRoundTrip(t *testing.T) {
	in := strings.Repeat("123456789", 9)
	g, err := ParseGrid(in)
	require.NoError(t, err)
	require.Equal(t, in, g.Compact())
	require.True(t, g.Full())
	require.Equal(t, 81, g.Givens())
}

func TestParseGridDotsAsEmpty(t *testing.T) {
	g, err := ParseGrid("5.3" + strings.Repeat(".", 78))
	require.NoError(t, err)
	require.Equal(t, uint8(5), g.At(0, 0))
	require.Equal(t, uint8(0), g.At(0, 1))
	require.Equal(t, uint8(3), g.At(0, 2))
	require.Equal(t, 2, g.Givens())
}

func TestParseGridRejectsBadInput(t *testing.T) {
	_, err := ParseGrid("123")
	require.Error(t, err)
	_, err = ParseGrid("x" + strings.Repeat("0", 80))
	require.ErrorIs(t, err, ErrValueRange)
}

func TestFromCellsRejectsOutOfRange(t *testing.T) {
	cells := make([]uint8, 81)
	cells[40] = 10
	_, err := FromCells(cells)
	require.ErrorIs(t, err, ErrValueRange)

	_, err = FromCells(cells[:80])
	require.Error(t, err)
}

func TestAtSet(t *testing.T) {
	var g Grid
	g.Set(4, 7, 9)
	require.Equal(t, uint8(9), g.At(4, 7))
	require.Equal(t, uint8(9), g[4*9+7])
}

func TestPuzzleApply(t *testing.T) {
	p := &Puzzle{}
	p.Grid.Set(0, 0, 5)
	p.Fixed[0] = true

	require.ErrorIs(t, p.Apply(0, 0, 1), ErrFixedCell)
	require.NoError(t, p.Apply(0, 1, 7))
	require.Equal(t, uint8(7), p.Grid.At(0, 1))
	// erase a user entry
	require.NoError(t, p.Apply(0, 1, 0))
	require.Equal(t, uint8(0), p.Grid.At(0, 1))

	require.ErrorIs(t, p.Apply(9, 0, 1), ErrOutOfBounds)
	require.ErrorIs(t, p.Apply(0, 0, 12), ErrValueRange)
}

func TestGridString(t *testing.T) {
	var g Grid
	g.Set(0, 0, 5)
	s := g.String()
	require.Contains(t, s, "| 5 ")
	require.Equal(t, 19, strings.Count(s, "\n"), "9 cell rows and 10 rules")
}
