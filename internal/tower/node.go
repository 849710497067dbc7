package tower

import "skiptower/internal/arena"

// groundNode is a lane-0 entry. Its span is implicitly 1 (spec.md §3),
// so unlike indexNode it carries no explicit delta.
type groundNode[T any] struct {
	right arena.Handle
	value T
}

// indexNode is a lane>=1 entry. down is a non-owning reference into
// the lane directly below (spec.md §3: "down links of index nodes are
// non-owning back-references"); the node it points at is owned by
// that lane's own right chain.
type indexNode struct {
	right arena.Handle
	down  arena.Handle
	delta uint
}
