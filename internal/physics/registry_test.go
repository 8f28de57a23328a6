package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryOrderAndHandles(t *testing.T) {
	reg := NewRegistry()
	a := newRect(t, reg, 0, 0, 1, 1)
	b := newCircle(t, reg, 5, 5, 1)
	c := newRect(t, reg, 9, 9, 2, 2)

	require.Equal(t, 3, reg.Len())
	require.Equal(t, []Shape{a, b, c}, reg.Shapes())
	require.Equal(t, Handle(0), a.Handle())
	require.Equal(t, Handle(1), b.Handle())
	require.Equal(t, Handle(2), c.Handle())
	require.Same(t, reg, a.Registry())
}

func TestRegistryRemoveKeepsOtherHandles(t *testing.T) {
	reg := NewRegistry()
	a := newRect(t, reg, 0, 0, 1, 1)
	b := newCircle(t, reg, 5, 5, 1)
	c := newRect(t, reg, 9, 9, 2, 2)

	require.True(t, reg.Remove(b.Handle()))
	require.False(t, reg.Remove(b.Handle()), "second removal")
	require.False(t, reg.Remove(Handle(17)))
	require.False(t, reg.Remove(NoHandle))

	require.Equal(t, 2, reg.Len())
	_, ok := reg.Get(b.Handle())
	require.False(t, ok)
	got, ok := reg.Get(c.Handle())
	require.True(t, ok)
	require.Same(t, c, got)
	require.Equal(t, []Shape{a, c}, reg.Shapes())

	d := newCircle(t, reg, 1, 1, 1)
	require.Equal(t, Handle(3), d.Handle(), "slots are not reused")
}

func TestRegistryEach(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 5; i++ {
		newCircle(t, reg, float64(i), 0, 1)
	}
	reg.Remove(Handle(1))

	var seen []Handle
	reg.Each(func(h Handle, s Shape) bool {
		require.Equal(t, h, s.Handle())
		seen = append(seen, h)
		return h == 3
	})
	require.Equal(t, []Handle{0, 2, 3}, seen)
}
