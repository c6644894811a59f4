package BoundMap

import (
	Go_BoundMap "github.com/g-m-twostay/go-boundmap"
	"github.com/g-m-twostay/go-boundmap/Maps"
)

// Stats describes how keys are spread over the buckets.
type Stats struct {
	Policy       IndexPolicy
	Buckets      uint //length of the bucket array.
	UsedBuckets  uint
	LongestChain uint
	Free         uint //slots on the free-list.
}

func (u *BoundMap[V]) Stats() Stats {
	s := Stats{Policy: u.policy, Buckets: u.buckets.Len(), UsedBuckets: u.buckets.Used(), Free: u.free.Len()}
	for i := uint(0); i < s.Buckets; i++ {
		var l uint
		for cur := u.buckets.Fetch(i); cur != nilSlot && l <= uint(len(u.entries)); cur = u.entries[cur].next {
			l++
		}
		s.LongestChain = max(s.LongestChain, l)
	}
	return s
}

// Verify walks every chain and the free-list and returns a Maps.CorruptError for the first broken invariant:
// every slot is either linked into exactly one chain or free, linked slots hash to the bucket holding them,
// and the number of linked slots equals Len.
func (u *BoundMap[V]) Verify() error {
	seen := Go_BoundMap.NewBitArray(uint(len(u.entries)))
	linked := 0
	for i := uint(0); i < u.buckets.Len(); i++ {
		for cur := u.buckets.Fetch(i); cur != nilSlot; cur = u.entries[cur].next {
			if int(cur) >= len(u.entries) {
				return Maps.Corrupt(int(cur), "bucket %d links outside the arena", i)
			} else if seen.Get(uint(cur)) {
				return Maps.Corrupt(int(cur), "linked twice, chain of bucket %d has a cycle or is shared", i)
			} else if !u.used.Get(uint(cur)) {
				return Maps.Corrupt(int(cur), "linked into bucket %d but not marked used", i)
			} else if e := &u.entries[cur]; u.buckets.Index(e.hash) != i {
				return Maps.Corrupt(int(cur), "hash %d belongs to bucket %d, found in %d", e.hash, u.buckets.Index(e.hash), i)
			}
			seen.Set(uint(cur))
			linked++
		}
	}

	var err error
	free := 0
	u.free.Range(func(slot uint32) bool {
		switch {
		case int(slot) >= len(u.entries):
			err = Maps.Corrupt(int(slot), "free-list holds a slot outside the arena")
		case seen.Get(uint(slot)):
			err = Maps.Corrupt(int(slot), "both linked and free")
		case u.used.Get(uint(slot)):
			err = Maps.Corrupt(int(slot), "free but marked used")
		default:
			seen.Set(uint(slot))
			free++
			return true
		}
		return false
	})
	if err != nil {
		return err
	}

	if linked+free != len(u.entries) {
		return Maps.Corrupt(-1, "%d linked and %d free slots, capacity %d", linked, free, len(u.entries))
	} else if linked != u.count {
		return Maps.Corrupt(-1, "%d linked slots but count is %d", linked, u.count)
	}
	return nil
}
