package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dlxsudoku/internal/domain"
)

func testPuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: d,
		CreatedAt:  1700000000,
		Name:       "fixture",
	}
	p.Grid.Set(0, 0, 5)
	p.Fixed[0] = true
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	in := testPuzzle("p1", domain.Hard)
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, in.Grid, out.Grid)
	require.Equal(t, in.Fixed, out.Fixed)
	require.Equal(t, domain.Hard, out.Difficulty)
	require.Equal(t, "fixture", out.Name)
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	require.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	require.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListAcrossDifficulties(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, testPuzzle("a", domain.Easy)))
	require.NoError(t, s.Save(ctx, testPuzzle("b", domain.Expert)))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	ids := []string{metas[0].ID, metas[1].ID}
	require.ElementsMatch(t, []string{"a", "b"}, ids)
}
