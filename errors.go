package dllist

import "errors"

var (
	// ErrEmptyList is returned by operations that need at least one node.
	ErrEmptyList = errors.New("dllist: empty list")
	// ErrForeignOrDetachedNode is returned when a handle does not refer to a
	// live node of the list it was passed to.
	ErrForeignOrDetachedNode = errors.New("dllist: node is not a member of this list")
	// ErrCorrupt is returned by Verify when the link structure is inconsistent.
	ErrCorrupt = errors.New("dllist: corrupt list")
)
