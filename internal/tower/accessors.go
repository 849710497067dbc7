package tower

import "skiptower/internal/arena"

// These helpers dispatch node access by (lane index, handle), treating
// arena.Nil as "the lane's own sentinel". A handle value of arena.Nil
// is only ever used as a cursor meaning "at the sentinel" — it is
// never the content of a .right or .down field that is actually
// dereferenced during a search, because every lane's span sum is
// size+1 (spec.md invariant 1), one more than the positions a search
// ever needs to consume. The walks that run to the end of a chain
// (validate.go, iterator.go, visualize.go and lane.release) check for
// chain-end explicitly rather than relying on these helpers' sentinel
// branch.

func (t *List[T]) deltaAt(lvl int, h arena.Handle) uint {
	if h == arena.Nil {
		return t.lanes[lvl].sentinelDelta
	}
	if lvl == 0 {
		return 1
	}
	return t.lanes[lvl].index.Get(h).delta
}

func (t *List[T]) rightAt(lvl int, h arena.Handle) arena.Handle {
	if h == arena.Nil {
		return t.lanes[lvl].sentinelRight
	}
	if lvl == 0 {
		return t.lanes[lvl].ground.Get(h).right
	}
	return t.lanes[lvl].index.Get(h).right
}

func (t *List[T]) downAt(lvl int, h arena.Handle) arena.Handle {
	if h == arena.Nil {
		// The sentinel's down link always targets the sentinel of the
		// lane below (spec.md §3: "down owns the sentinel of the next
		// lower lane"), which this representation also denotes by Nil.
		return arena.Nil
	}
	return t.lanes[lvl].index.Get(h).down
}

func (t *List[T]) setRight(lvl int, h, right arena.Handle) {
	if h == arena.Nil {
		t.lanes[lvl].sentinelRight = right
		return
	}
	if lvl == 0 {
		t.lanes[lvl].ground.Get(h).right = right
		return
	}
	t.lanes[lvl].index.Get(h).right = right
}

func (t *List[T]) setDelta(lvl int, h arena.Handle, d uint) {
	if h == arena.Nil {
		t.lanes[lvl].sentinelDelta = d
		return
	}
	t.lanes[lvl].index.Get(h).delta = d
}

func (t *List[T]) incDelta(lvl int, h arena.Handle) {
	t.setDelta(lvl, h, t.deltaAt(lvl, h)+1)
}

func (t *List[T]) decDelta(lvl int, h arena.Handle) {
	t.setDelta(lvl, h, t.deltaAt(lvl, h)-1)
}
