package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerm9CanonicalSeed(t *testing.T) {
	// The generator contract: seed 1 yields exactly this permutation.
	got := New(1).Perm9()
	require.Equal(t, [9]uint8{3, 5, 8, 9, 4, 6, 7, 2, 1}, got)
}

func TestStreamDeterminism(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestPerm9IsPermutation(t *testing.T) {
	for seed := uint32(1); seed <= 50; seed++ {
		p := New(seed).Perm9()
		var seen [10]bool
		for _, v := range p {
			require.GreaterOrEqual(t, v, uint8(1))
			require.LessOrEqual(t, v, uint8(9))
			require.Falsef(t, seen[v], "seed %d repeats %d", seed, v)
			seen[v] = true
		}
	}
}

func TestShuffleMatchesPerm9Order(t *testing.T) {
	vals := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	New(1).Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	require.Equal(t, []uint8{3, 5, 8, 9, 4, 6, 7, 2, 1}, vals)
}

func TestIntnRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Intn(9)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 9)
	}
}
