package tower

import "skiptower/internal/arena"

// lane is one horizontal level of the tower. Lane 0 (the ground lane)
// stores every element via a groundNode arena; every lane above it
// stores index entries via an indexNode arena. Exactly one of ground
// or index is non-nil, per spec.md §3's Sentinel/Index/Content split.
//
// sentinelRight/sentinelDelta represent the lane's sentinel directly
// (spec.md "Sentinel uniqueness": exactly one per lane). It is never
// itself allocated from an arena, and arena.Nil used as a cursor
// always means "currently at this lane's sentinel".
type lane[T any] struct {
	sentinelRight arena.Handle
	sentinelDelta uint

	ground *arena.Arena[groundNode[T]] // non-nil only on lane 0
	index  *arena.Arena[indexNode]     // non-nil only on lanes >= 1
}

func newGroundLane[T any](capacity uint) *lane[T] {
	return &lane[T]{
		sentinelDelta: 1,
		ground:        arena.New[groundNode[T]](capacity),
	}
}

func newIndexLane[T any](capacity uint) *lane[T] {
	return &lane[T]{
		sentinelDelta: 1,
		index:         arena.New[indexNode](capacity),
	}
}

// release walks the lane's right chain iteratively, freeing each node
// as it goes, then resets the sentinel to empty. This is spec.md
// §4.5's destruction policy: no recursion through owning links, so a
// lane of hundreds of thousands of elements cannot overflow the call
// stack.
func (l *lane[T]) release() {
	h := l.sentinelRight
	if l.ground != nil {
		for h != arena.Nil {
			next := l.ground.Get(h).right
			l.ground.Free(h)
			h = next
		}
	} else {
		for h != arena.Nil {
			next := l.index.Get(h).right
			l.index.Free(h)
			h = next
		}
	}
	l.sentinelRight = arena.Nil
}
