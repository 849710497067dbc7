package tower

import "errors"

var (
	// ErrOutOfRange is returned by Insert when the index is not in
	// [0, size], and by Remove when the index is not in [0, size).
	// Get does not return it: an out-of-range Get reports false.
	ErrOutOfRange = errors.New("tower: index out of range")

	// ErrEmpty is returned by PopFront/PopBack when the container has
	// no elements.
	ErrEmpty = errors.New("tower: list is empty")
)
