// Package tower implements the index-addressed skip-tower container:
// a positional sequence with expected O(log n) get/insert/remove,
// built from a stack of span-linked lanes (spec.md §2–§5).
package tower

import (
	"skiptower/internal/arena"
	"skiptower/internal/coin"
)

// List is the container described by spec.md. The zero value is not
// usable; construct one with New.
type List[T any] struct {
	size  int
	lanes []*lane[T] // lanes[0] is the ground lane; lanes[len-1] is the top.
	coin  coin.Source
	cap   uint
}

type config struct {
	coin coin.Source
	cap  uint
}

// Option configures a List at construction time.
type Option func(*config)

// WithCoin overrides the promotion coin, for deterministic tests.
func WithCoin(c coin.Source) Option {
	return func(cfg *config) { cfg.coin = c }
}

// WithCapacity bounds the number of live nodes each of the list's
// arenas will hold at once. 0 (the default) means unbounded.
func WithCapacity(n uint) Option {
	return func(cfg *config) { cfg.cap = n }
}

// New constructs an empty List.
func New[T any](opts ...Option) *List[T] {
	cfg := config{coin: coin.Default()}
	for _, o := range opts {
		o(&cfg)
	}
	return &List[T]{
		lanes: []*lane[T]{newGroundLane[T](cfg.cap)},
		coin:  cfg.coin,
		cap:   cfg.cap,
	}
}

// Len returns the number of elements currently stored.
func (t *List[T]) Len() int {
	return t.size
}

// Height returns the number of lanes in the tower (1 for an empty or
// unpromoted list).
func (t *List[T]) Height() int {
	return len(t.lanes)
}

// Get returns a pointer to the element at index i, or (nil, false) if
// i >= Len(). The pointer is valid until the next mutating call.
func (t *List[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= t.size {
		return nil, false
	}
	path := t.walk(i, false)
	target := t.rightAt(0, path[0].handle)
	return &t.lanes[0].ground.Get(target).value, true
}

// Insert places value at index i, shifting everything at or after i
// one position later. i must be in [0, Len()].
func (t *List[T]) Insert(i int, value T) error {
	if i < 0 || i > t.size {
		return ErrOutOfRange
	}

	path := t.walk(i+1, true)

	groundPred := path[0].handle
	newHandle, err := t.lanes[0].ground.Allocate(groundNode[T]{
		right: t.rightAt(0, groundPred),
		value: value,
	})
	if err != nil {
		return err
	}
	t.setRight(0, groundPred, newHandle)

	below := newHandle
	promoting := true
	lvl := 1
	for lvl < len(t.lanes) {
		pred := path[lvl].handle
		if promoting && t.coin.Flip() {
			localI := path[lvl].localI
			oldDelta := t.deltaAt(lvl, pred)
			oldRight := t.rightAt(lvl, pred)

			idxHandle, ierr := t.lanes[lvl].index.Allocate(indexNode{
				right: oldRight,
				down:  below,
				delta: oldDelta - uint(localI) + 1,
			})
			if ierr != nil {
				return ierr
			}
			t.setDelta(lvl, pred, uint(localI))
			t.setRight(lvl, pred, idxHandle)
			below = idxHandle
		} else {
			// Once promotion stops, every remaining lane (including
			// this one) just absorbs the new ground slot under its
			// existing span (spec.md §4.3 step 2 / §9).
			promoting = false
			t.incDelta(lvl, pred)
		}
		lvl++
	}

	if promoting && t.coin.Flip() {
		if err := t.growTower(i+1, below); err != nil {
			return err
		}
	}

	t.size++
	return nil
}

// growTower adds exactly one new top lane, per spec.md §4.3 step 5
// ("Only one new lane is added per insert").
func (t *List[T]) growTower(insertionIndex int, below arena.Handle) error {
	newLane := newIndexLane[T](t.cap)
	postSize := t.size + 1
	idxHandle, err := newLane.index.Allocate(indexNode{
		right: arena.Nil,
		down:  below,
		delta: uint(postSize - insertionIndex + 1),
	})
	if err != nil {
		return err
	}
	newLane.sentinelDelta = uint(insertionIndex)
	newLane.sentinelRight = idxHandle
	t.lanes = append(t.lanes, newLane)
	return nil
}

// Remove deletes and returns the element at index i. i must be in
// [0, Len()).
func (t *List[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= t.size {
		return zero, ErrOutOfRange
	}

	path := t.walk(i, false)

	groundPred := path[0].handle
	targetHandle := t.rightAt(0, groundPred)
	target := t.lanes[0].ground.Get(targetHandle)
	value := target.value
	t.setRight(0, groundPred, target.right)
	t.lanes[0].ground.Free(targetHandle)

	for lvl := 1; lvl < len(t.lanes); lvl++ {
		pred := path[lvl].handle
		localI := path[lvl].localI
		predDelta := t.deltaAt(lvl, pred)

		if predDelta == uint(localI)+1 {
			// The removed element is itself present on this lane:
			// absorb its span (spec.md §4.4 step 1, §9).
			removed := t.rightAt(lvl, pred)
			removedDelta := t.deltaAt(lvl, removed)
			removedRight := t.rightAt(lvl, removed)
			t.setRight(lvl, pred, removedRight)
			t.setDelta(lvl, pred, predDelta+removedDelta-1)
			t.lanes[lvl].index.Free(removed)
		} else {
			t.decDelta(lvl, pred)
		}
	}

	t.size--
	return value, nil
}

// PushFront inserts value at the head of the list.
func (t *List[T]) PushFront(value T) error {
	return t.Insert(0, value)
}

// PushBack inserts value at the tail of the list.
func (t *List[T]) PushBack(value T) error {
	return t.Insert(t.size, value)
}

// PopFront removes and returns the first element.
func (t *List[T]) PopFront() (T, error) {
	var zero T
	if t.size == 0 {
		return zero, ErrEmpty
	}
	return t.Remove(0)
}

// PopBack removes and returns the last element.
func (t *List[T]) PopBack() (T, error) {
	var zero T
	if t.size == 0 {
		return zero, ErrEmpty
	}
	return t.Remove(t.size - 1)
}

// Clear releases every node in the tower (spec.md §4.5) and resets
// the container to a single empty ground lane. The tower is not
// shrunk on ordinary Remove/pop operations (spec.md §4.4); Clear is
// the only operation that collapses lane height.
func (t *List[T]) Clear() {
	for lvl := len(t.lanes) - 1; lvl >= 0; lvl-- {
		t.lanes[lvl].release()
	}
	t.lanes = t.lanes[:1]
	t.lanes[0].sentinelDelta = 1
	t.size = 0
}
