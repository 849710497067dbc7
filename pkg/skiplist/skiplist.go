// Package skiplist exposes the index-addressed skip-tower container as
// a public, positional sequence: a drop-in-shaped alternative to a
// slice or container/list.List for workloads that need get/insert/
// remove at an arbitrary index in expected O(log n).
package skiplist

import (
	"io"
	"iter"

	"skiptower/internal/coin"
	"skiptower/internal/tower"
)

// Sentinel errors returned by List's methods. Use errors.Is to check
// for them; do not compare values directly.
var (
	// ErrOutOfRange is returned by Insert when the index is not in
	// [0, Len()], and by Remove when it is not in [0, Len()). Get
	// does not return it: an out-of-range Get reports false.
	ErrOutOfRange = tower.ErrOutOfRange

	// ErrEmpty is returned by PopFront/PopBack on an empty List.
	ErrEmpty = tower.ErrEmpty
)

// List is a positional sequence backed by a skip tower (spec.md §2).
// The zero value is not usable; construct one with New.
type List[T any] struct {
	t *tower.List[T]
}

// Option configures a List at construction time.
type Option func(*options)

type options struct {
	seed     *[2]uint64
	hasSeed  bool
	capacity uint
}

// WithSeed makes promotion deterministic, for reproducible tests and
// benchmarks. Without it, List uses runtime entropy.
func WithSeed(seed1, seed2 uint64) Option {
	return func(o *options) {
		o.seed = &[2]uint64{seed1, seed2}
		o.hasSeed = true
	}
}

// WithCapacity bounds the number of elements List will ever hold. 0
// (the default) means unbounded. Insert returns an error once a
// capacity-bounded List is full.
func WithCapacity(n uint) Option {
	return func(o *options) { o.capacity = n }
}

// New constructs an empty List.
func New[T any](opts ...Option) *List[T] {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	towerOpts := []tower.Option{tower.WithCapacity(o.capacity)}
	if o.hasSeed {
		towerOpts = append(towerOpts, tower.WithCoin(coin.Seeded(o.seed[0], o.seed[1])))
	}

	return &List[T]{t: tower.New[T](towerOpts...)}
}

// Len returns the number of elements currently stored.
func (l *List[T]) Len() int { return l.t.Len() }

// Height returns the number of lanes in the underlying tower. Exposed
// mainly for diagnostics and tests; ordinary callers don't need it.
func (l *List[T]) Height() int { return l.t.Height() }

// Get returns a pointer to the element at index i, or (nil, false) if
// i is out of range. The pointer is valid until the next mutating call
// on l.
func (l *List[T]) Get(i int) (*T, bool) { return l.t.Get(i) }

// Insert places value at index i, shifting everything at or after i
// one position later.
func (l *List[T]) Insert(i int, value T) error { return l.t.Insert(i, value) }

// Remove deletes and returns the element at index i.
func (l *List[T]) Remove(i int) (T, error) { return l.t.Remove(i) }

// PushFront inserts value at the head of the list.
func (l *List[T]) PushFront(value T) error { return l.t.PushFront(value) }

// PushBack inserts value at the tail of the list.
func (l *List[T]) PushBack(value T) error { return l.t.PushBack(value) }

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) { return l.t.PopFront() }

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) { return l.t.PopBack() }

// Clear removes every element.
func (l *List[T]) Clear() { l.t.Clear() }

// Values returns a single-pass iterator over the elements in order.
func (l *List[T]) Values() iter.Seq[T] { return l.t.Values() }

// Mutate returns a single-pass iterator yielding a pointer to each
// element, for in-place updates.
func (l *List[T]) Mutate() iter.Seq[*T] { return l.t.Mutate() }

// Drain returns a single-pass iterator that removes each element as it
// is yielded.
func (l *List[T]) Drain() iter.Seq[T] { return l.t.Drain() }

// Validate walks every invariant in spec.md §8 and reports every
// violation found. Intended for tests and debug tooling, not
// production hot paths.
func (l *List[T]) Validate() error { return l.t.Validate() }

// String renders the tower's lane structure, one lane per line,
// top-down. Intended for debugging, not a stable format.
func (l *List[T]) String() string { return l.t.String() }

// Visualize writes the same rendering as String directly to w.
func (l *List[T]) Visualize(w io.Writer) { l.t.Visualize(w) }
