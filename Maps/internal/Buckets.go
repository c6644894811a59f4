package internal

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Nil is the slot value meaning "no entry". It's the largest value of I, so an arena indexed by I holds at most Nil entries.
func Nil[I constraints.Unsigned]() I {
	return ^I(0)
}

// Buckets is the array of chain heads. Each element is the arena slot of a chain's first entry, or Nil.
// Its length is fixed at creation. When pow2 is set the length is rounded up to a power of 2 and indices are computed by masking; otherwise by modulo.
type Buckets[I constraints.Unsigned] struct {
	heads []I
	mask  uint // len(heads)-1, only meaningful when pow2
	pow2  bool
}

// NewBuckets with at least n empty buckets. n must be positive.
func NewBuckets[I constraints.Unsigned](n uint, pow2 bool) Buckets[I] {
	if pow2 {
		n = 1 << bits.Len(n-1)
	}
	u := Buckets[I]{heads: make([]I, n), mask: n - 1, pow2: pow2}
	for i := range u.heads {
		u.heads[i] = Nil[I]()
	}
	return u
}

// Index of the bucket hash belongs to.
func (u Buckets[I]) Index(hash uint) uint {
	if u.pow2 {
		return hash & u.mask
	}
	return hash % uint(len(u.heads))
}

// Get the chain head for hash.
func (u Buckets[I]) Get(hash uint) I {
	return u.heads[u.Index(hash)]
}

func (u Buckets[I]) Fetch(i uint) I {
	return u.heads[i]
}

func (u Buckets[I]) Set(i uint, head I) {
	u.heads[i] = head
}

func (u Buckets[I]) Len() uint {
	return uint(len(u.heads))
}

// Used counts the non-empty buckets.
func (u Buckets[I]) Used() (n uint) {
	for _, h := range u.heads {
		if h != Nil[I]() {
			n++
		}
	}
	return
}
