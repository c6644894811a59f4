package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNil(t *testing.T) {
	require.Equal(t, ^uint32(0), Nil[uint32]())
	require.Equal(t, uint8(255), Nil[uint8]())
}

func TestBuckets_Modulo(t *testing.T) {
	B := NewBuckets[uint32](10, false)
	require.Equal(t, uint(10), B.Len())
	require.Equal(t, uint(0), B.Used())
	require.Equal(t, uint(3), B.Index(13))
	require.Equal(t, uint(9), B.Index(99))
	B.Set(3, 7)
	require.Equal(t, uint32(7), B.Get(13))
	require.Equal(t, Nil[uint32](), B.Fetch(4))
	require.Equal(t, uint(1), B.Used())
}

func TestBuckets_Pow2(t *testing.T) {
	for _, c := range []struct{ n, want uint }{{1, 1}, {2, 2}, {3, 4}, {10, 16}, {16, 16}, {17, 32}} {
		B := NewBuckets[uint32](c.n, true)
		require.Equal(t, c.want, B.Len(), "n=%d", c.n)
		for h := uint(0); h < 100; h++ {
			require.Less(t, B.Index(h), B.Len())
			require.Equal(t, h%c.want, B.Index(h))
		}
	}
}

func TestSlotStack_All(t *testing.T) {
	S := NewSlotStack[uint32](3)
	require.True(t, S.Empty())
	_, ok := S.Pop()
	require.False(t, ok)
	for i := uint32(0); i < 3; i++ {
		require.True(t, S.Push(i))
	}
	require.False(t, S.Push(9), "push past capacity")
	require.Equal(t, uint(3), S.Len())
	require.Equal(t, uint(3), S.Cap())

	var seen []uint32
	S.Range(func(v uint32) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []uint32{2, 1, 0}, seen)

	for want := uint32(3); want > 0; want-- {
		v, ok := S.Pop()
		require.True(t, ok)
		require.Equal(t, want-1, v)
	}
	require.True(t, S.Empty())
}
