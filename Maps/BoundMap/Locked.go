package BoundMap

import (
	"sync"

	"github.com/g-m-twostay/go-boundmap/Maps"
)

var _ Maps.Bounded[int] = (*Locked[int])(nil)

// Locked serializes every call on a BoundMap with one mutex, so it can be shared between goroutines.
type Locked[V any] struct {
	mu sync.Mutex
	m  *BoundMap[V]
}

func NewLocked[V any](size int, options ...func(*Config)) (*Locked[V], error) {
	M, err := New[V](size, options...)
	if err != nil {
		return nil, err
	}
	return &Locked[V]{m: M}, nil
}

func (u *Locked[V]) Set(key string, val V) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Set(key, val)
}

func (u *Locked[V]) Get(key string) (V, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Get(key)
}

func (u *Locked[V]) Delete(key string) (V, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Delete(key)
}

func (u *Locked[V]) Load() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Load()
}

func (u *Locked[V]) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Len()
}

// Do runs f with exclusive access to the underlying map, for sequences that must not interleave with other calls.
func (u *Locked[V]) Do(f func(*BoundMap[V])) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f(u.m)
}
