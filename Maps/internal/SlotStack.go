package internal

import "golang.org/x/exp/constraints"

// SlotStack is a LIFO of free arena slots with a capacity fixed at creation. It never reallocates.
type SlotStack[I constraints.Unsigned] struct {
	vs []I
}

func NewSlotStack[I constraints.Unsigned](capacity uint) *SlotStack[I] {
	return &SlotStack[I]{vs: make([]I, 0, capacity)}
}

// Push v. Returns false if the stack is already full.
func (s *SlotStack[I]) Push(v I) bool {
	if len(s.vs) == cap(s.vs) {
		return false
	}
	s.vs = append(s.vs, v)
	return true
}

// Pop the most recently pushed slot. Returns false if empty.
func (s *SlotStack[I]) Pop() (v I, ok bool) {
	if n := len(s.vs); n > 0 {
		v, ok = s.vs[n-1], true
		s.vs = s.vs[:n-1]
	}
	return
}

func (s *SlotStack[I]) Len() uint {
	return uint(len(s.vs))
}

func (s *SlotStack[I]) Cap() uint {
	return uint(cap(s.vs))
}

func (s *SlotStack[I]) Empty() bool {
	return len(s.vs) == 0
}

// Range calls f on every slot from top to bottom, stopping when f returns false.
func (s *SlotStack[I]) Range(f func(I) bool) {
	for i := len(s.vs) - 1; i >= 0; i-- {
		if !f(s.vs[i]) {
			return
		}
	}
}
