package skiplist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"skiptower/pkg/skiplist"
)

func TestBuildSequence(t *testing.T) {
	l := skiplist.New[int](skiplist.WithSeed(1, 1))

	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))
	require.NoError(t, l.PushBack(3))
	require.NoError(t, l.PushFront(30))
	require.NoError(t, l.PushFront(20))
	require.NoError(t, l.PushFront(10))
	require.NoError(t, l.Insert(3, 100))

	want := []int{10, 20, 30, 100, 1, 2, 3}
	require.Equal(t, len(want), l.Len())
	for i, w := range want {
		v, ok := l.Get(i)
		require.True(t, ok)
		require.Equal(t, w, *v)
	}
	require.NoError(t, l.Validate())
}

func TestOutOfRangeAndEmpty(t *testing.T) {
	l := skiplist.New[string]()

	_, ok := l.Get(0)
	require.False(t, ok)

	err := l.Insert(1, "x")
	require.ErrorIs(t, err, skiplist.ErrOutOfRange)

	_, err = l.Remove(0)
	require.ErrorIs(t, err, skiplist.ErrOutOfRange)

	_, err = l.PopFront()
	require.ErrorIs(t, err, skiplist.ErrEmpty)

	_, err = l.PopBack()
	require.ErrorIs(t, err, skiplist.ErrEmpty)
}

func TestCapacityBound(t *testing.T) {
	l := skiplist.New[int](skiplist.WithCapacity(2))

	require.NoError(t, l.PushBack(1))
	require.NoError(t, l.PushBack(2))
	err := l.PushBack(3)
	require.Error(t, err)
}

func TestIteration(t *testing.T) {
	l := skiplist.New[int](skiplist.WithSeed(4, 4))
	for i := 0; i < 5; i++ {
		require.NoError(t, l.PushBack(i))
	}

	for v := range l.Mutate() {
		*v *= 10
	}

	got := make([]int, 0, 5)
	for v := range l.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{0, 10, 20, 30, 40}, got)

	drained := make([]int, 0, 5)
	for v := range l.Drain() {
		drained = append(drained, v)
	}
	require.Equal(t, got, drained)
	require.Equal(t, 0, l.Len())
}

func TestDeterministicSeedReproducesStructure(t *testing.T) {
	a := skiplist.New[int](skiplist.WithSeed(123, 456))
	b := skiplist.New[int](skiplist.WithSeed(123, 456))

	for i := 0; i < 200; i++ {
		require.NoError(t, a.PushBack(i))
		require.NoError(t, b.PushBack(i))
	}

	require.Equal(t, a.Height(), b.Height())
	require.Equal(t, a.String(), b.String())
}
