// Package coin supplies the fair-coin promotion source used when
// deciding whether a newly inserted element is promoted to the next
// lane of the tower (spec.md §4.3 step 3, §9 "Randomness").
package coin

import "math/rand/v2"

// Source flips an independent, unbiased coin per call. Implementations
// must be safe to call repeatedly within a single insert (once per
// candidate lane) but need not be safe for concurrent use — the
// container itself is single-threaded (spec.md §5).
type Source interface {
	// Flip reports heads (promote) with probability 1/2.
	Flip() bool
}

type randSource struct {
	r *rand.Rand
}

// Default returns a Source seeded from the runtime's entropy source,
// suitable for production use.
func Default() Source {
	return &randSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Seeded returns a deterministic Source, for reproducible tests and
// benchmarks.
func Seeded(seed1, seed2 uint64) Source {
	return &randSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *randSource) Flip() bool {
	return s.r.Float64() < 0.5
}
