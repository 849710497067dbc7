package coin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := Seeded(1, 2)
	b := Seeded(1, 2)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Flip(), b.Flip())
	}
}

func TestFlipIsRoughlyFair(t *testing.T) {
	s := Seeded(7, 42)
	heads := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if s.Flip() {
			heads++
		}
	}
	require.InDelta(t, n/2, heads, float64(n)/10)
}
