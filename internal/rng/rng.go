// Package rng provides the deterministic xorshift32 generator the board
// generator is contracted to: seed 1 must yield the permutation
// [3 5 8 9 4 6 7 2 1]. math/rand would break that contract, so the generator
// is fixed at the bit level here.
package rng

// Source is a non-cryptographic xorshift32 stream.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed. Zero is a fixed point of xorshift32;
// callers are expected to pass a non-zero seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Next advances the stream and returns the next 32-bit value.
func (s *Source) Next() uint32 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	return x
}

// Intn returns a value in [0, n). Modulo bias is acceptable for board
// generation and keeps the stream compatible with the reference contract.
func (s *Source) Intn(n int) int {
	return int(s.Next() % uint32(n))
}

// Perm9 returns a Fisher-Yates permutation of the digits 1..9.
func (s *Source) Perm9() [9]uint8 {
	a := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := len(a) - 1; i >= 1; i-- {
		j := int(s.Next() % uint32(i+1))
		a[i], a[j] = a[j], a[i]
	}
	return a
}

// Shuffle permutes n elements in place via the swap callback, Fisher-Yates
// order matching Perm9.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i >= 1; i-- {
		j := int(s.Next() % uint32(i+1))
		swap(i, j)
	}
}
