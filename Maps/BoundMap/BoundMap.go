// Package BoundMap implements a fixed-capacity hashmap from strings to V using separate chaining.
//
// Entries live in an arena allocated once by New; chains link arena slots by index. Unused slots are kept on a free-list,
// so once the map has been filled, Delete followed by Set reuses slots instead of allocating.
// Delete unlinks the entry and returns its slot to the free-list, so Len and Load always count live keys only.
//
// A BoundMap isn't safe for concurrent use, see Locked.
package BoundMap

import (
	"math"

	Go_BoundMap "github.com/g-m-twostay/go-boundmap"
	"github.com/g-m-twostay/go-boundmap/Maps"
	"github.com/g-m-twostay/go-boundmap/Maps/internal"
)

const (
	// MaxCapacity is the largest size New accepts.
	MaxCapacity = math.MaxInt32
	nilSlot     = ^uint32(0)
)

var _ Maps.Bounded[int] = (*BoundMap[int])(nil)

type BoundMap[V any] struct {
	buckets internal.Buckets[uint32]
	entries []entry[V]
	free    *internal.SlotStack[uint32]
	used    Go_BoundMap.BitArray //bit i is set iff entries[i] is linked into a chain.
	hasher  Go_BoundMap.Hasher
	count   int
	policy  IndexPolicy
}

// New BoundMap holding at most size keys. size must be in [1, MaxCapacity].
func New[V any](size int, options ...func(*Config)) (*BoundMap[V], error) {
	if size <= 0 {
		return nil, Maps.InvalidArgument("New", "size", "must be positive, got %d", size)
	} else if size > MaxCapacity {
		return nil, Maps.InvalidArgument("New", "size", "%d exceeds the maximum capacity %d", size, MaxCapacity)
	}
	var cfg Config
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.Policy > PowerOfTwo {
		return nil, Maps.InvalidArgument("New", "index policy", "unknown policy %d", cfg.Policy)
	}
	if cfg.Hasher == nil {
		cfg.Hasher = Go_BoundMap.Seed(cfg.Seed)
	}

	M := &BoundMap[V]{
		buckets: internal.NewBuckets[uint32](uint(size), cfg.Policy == PowerOfTwo),
		entries: make([]entry[V], size),
		free:    internal.NewSlotStack[uint32](uint(size)),
		used:    Go_BoundMap.NewBitArray(uint(size)),
		hasher:  cfg.Hasher,
		policy:  cfg.Policy,
	}
	for i := size - 1; i >= 0; i-- { //pushed in reverse so slot 0 is handed out first.
		M.entries[i].next = nilSlot
		M.free.Push(uint32(i))
	}
	return M, nil
}

// MustNew is like New but panics on error.
func MustNew[V any](size int, options ...func(*Config)) *BoundMap[V] {
	M, err := New[V](size, options...)
	if err != nil {
		panic(err)
	}
	return M
}

// Set val under key. If the map is full, Set returns false without looking for key, so even an update of a present key is refused.
func (u *BoundMap[V]) Set(key string, val V) bool {
	if u.count == len(u.entries) {
		return false
	}
	hash := u.hasher.HashString(key)
	i, tail := u.buckets.Index(hash), nilSlot
	for cur := u.buckets.Fetch(i); cur != nilSlot; cur = u.entries[cur].next {
		if e := &u.entries[cur]; e.matches(hash, key) {
			e.value = val
			return true
		}
		tail = cur
	}

	slot, ok := u.free.Pop()
	if !ok {
		panic("BoundMap: free-list exhausted below capacity")
	}
	u.entries[slot].fill(hash, key, val)
	if tail == nilSlot {
		u.buckets.Set(i, slot)
	} else {
		u.entries[tail].next = slot
	}
	u.used.Set(uint(slot))
	u.count++
	return true
}

// Get the value under key.
func (u *BoundMap[V]) Get(key string) (val V, found bool) {
	hash := u.hasher.HashString(key)
	for cur := u.buckets.Get(hash); cur != nilSlot; cur = u.entries[cur].next {
		if e := &u.entries[cur]; e.matches(hash, key) {
			return e.value, true
		}
	}
	return
}

func (u *BoundMap[V]) Has(key string) bool {
	_, found := u.Get(key)
	return found
}

// Delete key, returning the value it held. The entry's slot goes back to the free-list.
func (u *BoundMap[V]) Delete(key string) (val V, deleted bool) {
	hash := u.hasher.HashString(key)
	i, prev := u.buckets.Index(hash), nilSlot
	for cur := u.buckets.Fetch(i); cur != nilSlot; prev, cur = cur, u.entries[cur].next {
		e := &u.entries[cur]
		if !e.matches(hash, key) {
			continue
		}
		val = e.value
		if prev == nilSlot {
			u.buckets.Set(i, e.next)
		} else {
			u.entries[prev].next = e.next
		}
		e.clear()
		u.used.Clr(uint(cur))
		if !u.free.Push(cur) {
			panic("BoundMap: free-list overflow")
		}
		u.count--
		return val, true
	}
	return
}

// Load factor: Len()/Cap().
func (u *BoundMap[V]) Load() float64 {
	return float64(u.count) / float64(len(u.entries))
}

func (u *BoundMap[V]) Len() int {
	return u.count
}

// Cap is the fixed number of keys the map can hold.
func (u *BoundMap[V]) Cap() int {
	return len(u.entries)
}

// SetAny is Set for a key of unknown type. A non-string key is rejected with Maps.ErrInvalidArgument before anything else happens.
func (u *BoundMap[V]) SetAny(key any, val V) (bool, error) {
	k, err := Maps.KeyOf("Set", key)
	if err != nil {
		return false, err
	}
	return u.Set(k, val), nil
}

// GetAny is Get for a key of unknown type.
func (u *BoundMap[V]) GetAny(key any) (val V, found bool, err error) {
	k, err := Maps.KeyOf("Get", key)
	if err != nil {
		return
	}
	val, found = u.Get(k)
	return
}

// DeleteAny is Delete for a key of unknown type.
func (u *BoundMap[V]) DeleteAny(key any) (val V, deleted bool, err error) {
	k, err := Maps.KeyOf("Delete", key)
	if err != nil {
		return
	}
	val, deleted = u.Delete(k)
	return
}
