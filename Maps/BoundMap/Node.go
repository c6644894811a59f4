package BoundMap

import "fmt"

// entry is one arena slot. A free slot has an empty key, a zero value and next == nilSlot.
type entry[V any] struct {
	key   string
	value V
	hash  uint
	next  uint32 //arena slot of the next entry in the chain.
}

func (e *entry[V]) fill(hash uint, key string, val V) {
	e.hash, e.key, e.value, e.next = hash, key, val, nilSlot
}

func (e *entry[V]) clear() {
	*e = entry[V]{next: nilSlot}
}

func (e *entry[V]) matches(hash uint, key string) bool {
	return e.hash == hash && e.key == key
}

func (e *entry[V]) String() string {
	return fmt.Sprintf("key: %q; val: %v; hash: %d; next: %d", e.key, e.value, e.hash, e.next)
}
