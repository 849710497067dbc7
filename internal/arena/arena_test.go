package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateAndGet(t *testing.T) {
	a := New[int](0)

	h1, err := a.Allocate(10)
	require.NoError(t, err)
	h2, err := a.Allocate(20)
	require.NoError(t, err)

	require.NotEqual(t, Nil, h1)
	require.NotEqual(t, Nil, h2)
	require.NotEqual(t, h1, h2)
	require.Equal(t, 10, *a.Get(h1))
	require.Equal(t, 20, *a.Get(h2))
	require.EqualValues(t, 2, a.Len())
}

func TestFreeReusesSlot(t *testing.T) {
	a := New[string](0)

	h1, err := a.Allocate("a")
	require.NoError(t, err)
	a.Free(h1)

	h2, err := a.Allocate("b")
	require.NoError(t, err)

	require.Equal(t, h1, h2, "freed slot should be reused before growing")
	require.Equal(t, "b", *a.Get(h2))
	require.EqualValues(t, 1, a.Len())
}

func TestCapacityFull(t *testing.T) {
	a := New[int](2)

	_, err := a.Allocate(1)
	require.NoError(t, err)
	_, err = a.Allocate(2)
	require.NoError(t, err)
	_, err = a.Allocate(3)
	require.ErrorIs(t, err, ErrArenaFull)
}

func TestReset(t *testing.T) {
	a := New[int](0)
	for i := 0; i < 10; i++ {
		_, err := a.Allocate(i)
		require.NoError(t, err)
	}
	require.EqualValues(t, 10, a.Len())

	a.Reset()
	require.EqualValues(t, 0, a.Len())

	h, err := a.Allocate(99)
	require.NoError(t, err)
	require.Equal(t, 99, *a.Get(h))
}
