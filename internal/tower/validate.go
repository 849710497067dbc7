package tower

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"skiptower/internal/arena"
)

// Validate walks the entire tower and checks every invariant listed
// in spec.md §8 (span sums, cross-level span consistency). It is
// meant for debug builds and randomized tests, not production hot
// paths — it is O(n * height). A nil return means every invariant
// held.
//
// Internal invariant violations indicate a bug in the container
// itself (spec.md §7): Validate reports every one it finds rather
// than stopping at the first, via go-multierror, so a failing
// randomized test shows the whole picture in one run. The one
// exception is a span-consistency walk that never reaches its stop
// point: that ends the check of its lane.
func (t *List[T]) Validate() error {
	var errs *multierror.Error

	want := uint(t.size + 1)
	for lvl := range t.lanes {
		if sum := t.sumDeltas(lvl); sum != want {
			errs = multierror.Append(errs, fmt.Errorf(
				"lane %d: span sum %d, want %d (size+1)", lvl, sum, want))
		}
	}

	for lvl := 1; lvl < len(t.lanes); lvl++ {
		if err := t.validateSpanConsistency(lvl); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}

// sumDeltas totals delta over every link on lvl, including the
// sentinel's. Per invariant 1 this must equal size+1.
func (t *List[T]) sumDeltas(lvl int) uint {
	sum := t.lanes[lvl].sentinelDelta
	h := t.lanes[lvl].sentinelRight
	for h != arena.Nil {
		sum += t.deltaAt(lvl, h)
		h = t.rightAt(lvl, h)
	}
	return sum
}

// validateSpanConsistency checks invariant 3 for every index node on
// lvl: delta(N) must equal the sum of deltas on lane lvl-1 from
// N.down up to (but excluding) the node just below N.right, or to the
// end of the lane if N has no right neighbor.
func (t *List[T]) validateSpanConsistency(lvl int) error {
	var errs *multierror.Error
	h := t.lanes[lvl].sentinelRight
	guard := t.size + 2 // more hops than any real chain could need
	for h != arena.Nil {
		node := t.lanes[lvl].index.Get(h)

		var stopAt arena.Handle
		if node.right != arena.Nil {
			stopAt = t.lanes[lvl].index.Get(node.right).down
		} else {
			stopAt = arena.Nil
		}

		sum := uint(0)
		cur := node.down
		steps := 0
		for cur != stopAt {
			if steps > guard {
				errs = multierror.Append(errs, fmt.Errorf(
					"lane %d: span-consistency walk for node %d never reached its stop point", lvl, h))
				return errs.ErrorOrNil()
			}
			sum += t.deltaAt(lvl-1, cur)
			cur = t.rightAt(lvl-1, cur)
			steps++
		}

		if sum != node.delta {
			errs = multierror.Append(errs, fmt.Errorf(
				"lane %d: index node %d has delta %d, but lane %d chain under it sums to %d",
				lvl, h, node.delta, lvl-1, sum))
		}

		h = node.right
	}
	return errs.ErrorOrNil()
}
