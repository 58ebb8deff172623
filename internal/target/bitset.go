package target

import "math/bits"

// Bitset is a fixed-size bit vector over [0, n), used for restrict sets.
// It exists so restrict-set membership tests on
// the Dijkstra hot path are O(1) word lookups rather than map probes.
type Bitset struct {
	words []uint64
	n     int
}

// NewBitset allocates a Bitset over [0, n), all bits clear.
func NewBitset(n int) *Bitset {
	return &Bitset{words: make([]uint64, (n+63)/64), n: n}
}

// Set marks bit i.
func (b *Bitset) Set(i int) { b.words[i>>6] |= 1 << uint(i&63) }

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool { return b.words[i>>6]&(1<<uint(i&63)) != 0 }

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	c := 0
	for _, w := range b.words {
		c += bits.OnesCount64(w)
	}
	return c
}
