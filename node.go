package dllist

// none is the reserved arena slot that stands for "no node".
const none = 0

// node is one arena slot. prev and next are slot indexes, not pointers, so a
// freed slot never keeps anything in the list reachable.
type node[T any] struct {
	value T
	prev  int
	next  int
	gen   uint32 // bumped every time the slot is freed
	live  bool
}

// Handle is an opaque reference to a node, checked against its owning list
// on every use. The zero Handle refers to nothing.
type Handle[T any] struct {
	list *List[T]
	idx  int
	gen  uint32
}

// IsZero reports whether h was never assigned a node.
func (h Handle[T]) IsZero() bool {
	return h.list == nil
}
