package core

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// DefaultSeed seeds the generator when no seed is configured.
const DefaultSeed int64 = 42

// Permutation maps output position i to input row Permutation[i].
type Permutation []int

// NewPermutation returns a uniformly random permutation of [0, n) drawn from a
// Mersenne Twister seeded with seed. The same n and seed always give the same
// permutation.
func NewPermutation(n int, seed int64) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	if n <= 1 {
		return p
	}

	src := mt19937.New()
	src.Seed(seed)
	rng := rand.New(src) // #nosec G404 -- reproducible ordering, not security

	rng.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// Apply returns rows reordered by p. rows itself is left untouched.
// Panics if len(rows) != len(p).
func (p Permutation) Apply(rows [][]string) [][]string {
	if len(rows) != len(p) {
		panic("permutation length does not match row count")
	}

	out := make([][]string, len(p))
	for i, src := range p {
		out[i] = rows[src]
	}
	return out
}

// Shuffle returns a new table whose rows are t's rows in seeded random order.
// Columns and row contents are unchanged; t is not modified.
func Shuffle(t *Table, seed int64) *Table {
	columns := append([]string(nil), t.Columns...)
	perm := NewPermutation(t.Len(), seed)
	return NewTable(columns, perm.Apply(t.Rows))
}
