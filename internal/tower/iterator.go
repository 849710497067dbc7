package tower

import (
	"iter"

	"skiptower/internal/arena"
)

// Values returns a single-pass, shared iterator over the ground lane
// in list order (spec.md §4.6). The lane is read when the iterator is
// ranged over, not when Values is called, so mutations made in between
// are seen.
func (t *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		h := t.rightAt(0, arena.Nil)
		for h != arena.Nil {
			node := t.lanes[0].ground.Get(h)
			next := node.right
			if !yield(node.value) {
				return
			}
			h = next
		}
	}
}

// Mutate returns a single-pass, exclusive iterator over the ground
// lane, yielding a pointer to each element so the caller may modify
// it in place.
func (t *List[T]) Mutate() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		h := t.rightAt(0, arena.Nil)
		for h != arena.Nil {
			node := t.lanes[0].ground.Get(h)
			next := node.right
			if !yield(&node.value) {
				return
			}
			h = next
		}
	}
}

// Drain returns a single-pass, consuming iterator: each value yielded
// has already been removed from the list by the time it is produced,
// so by the time iteration completes (or the caller stops early),
// Len() reflects however many elements were actually drained.
func (t *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t.size > 0 {
			v, _ := t.Remove(0)
			if !yield(v) {
				return
			}
		}
	}
}
