package tower

import "skiptower/internal/arena"

// pathEntry records, for one lane, the predecessor handle the search
// stopped at and the remaining offset (in walk's convention for the
// rule used) at the moment it descended past that lane.
type pathEntry struct {
	handle arena.Handle
	localI int
}

// walk performs the canonical skip-tower descent described in
// spec.md §4.1: starting at the top sentinel with offset i, it walks
// right while the landing rule allows, then drops down, repeating per
// lane until it reaches the ground.
//
// strict selects the two landing rules spec.md distinguishes:
//   - strict=true  (insert): i is the 1-based insertion position; stop
//     consuming once a link's delta >= i, landing one slot before the
//     insertion point.
//   - strict=false (get/remove): i is the 0-based element index; stop
//     once a link's delta > i, landing exactly on the existing
//     element's predecessor.
//
// The returned slice has one entry per lane, indexed by lane number,
// so callers needing only the ground-lane result use path[0].
func (t *List[T]) walk(i int, strict bool) []pathEntry {
	path := make([]pathEntry, len(t.lanes))
	h := arena.Nil
	for lvl := len(t.lanes) - 1; lvl >= 0; lvl-- {
		for {
			d := t.deltaAt(lvl, h)
			if strict {
				if d >= uint(i) {
					break
				}
			} else if d > uint(i) {
				break
			}
			i -= int(d)
			h = t.rightAt(lvl, h)
		}
		path[lvl] = pathEntry{handle: h, localI: i}
		if lvl > 0 {
			h = t.downAt(lvl, h)
		}
	}
	return path
}
