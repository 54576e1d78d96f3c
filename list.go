package dllist

import (
	"cmp"
	"fmt"
)

// List is a doubly linked list whose nodes live in an arena owned by the
// list. The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use. Callers sharing one across
// goroutines must guard every call, reads included, with a single lock.
type List[T any] struct {
	nodes  []node[T] // nodes[0] is the reserved none slot
	free   []int
	head   int
	tail   int
	length int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWith returns a list seeded with a single node holding v.
func NewWith[T any](v T) (*List[T], Handle[T]) {
	l := New[T]()
	h := l.AddToHead(v)
	return l, h
}

func (l *List[T]) Len() int {
	return l.length
}

// Head returns a handle to the first node, or false if the list is empty.
func (l *List[T]) Head() (Handle[T], bool) {
	if l.head == none {
		return Handle[T]{}, false
	}
	return l.handle(l.head), true
}

// Tail returns a handle to the last node, or false if the list is empty.
func (l *List[T]) Tail() (Handle[T], bool) {
	if l.tail == none {
		return Handle[T]{}, false
	}
	return l.handle(l.tail), true
}

// Next returns the successor of h. It returns false at the tail or when h
// is not a live member of l.
func (l *List[T]) Next(h Handle[T]) (Handle[T], bool) {
	if !l.Contains(h) {
		return Handle[T]{}, false
	}
	if n := l.nodes[h.idx].next; n != none {
		return l.handle(n), true
	}
	return Handle[T]{}, false
}

// Prev returns the predecessor of h. It returns false at the head or when h
// is not a live member of l.
func (l *List[T]) Prev(h Handle[T]) (Handle[T], bool) {
	if !l.Contains(h) {
		return Handle[T]{}, false
	}
	if p := l.nodes[h.idx].prev; p != none {
		return l.handle(p), true
	}
	return Handle[T]{}, false
}

// Contains reports whether h refers to a node currently in l.
func (l *List[T]) Contains(h Handle[T]) bool {
	if h.list != l || h.idx <= none || h.idx >= len(l.nodes) {
		return false
	}
	n := &l.nodes[h.idx]
	return n.live && n.gen == h.gen
}

func (l *List[T]) Value(h Handle[T]) (T, error) {
	if err := l.check(h); err != nil {
		var zero T
		return zero, err
	}
	return l.nodes[h.idx].value, nil
}

func (l *List[T]) SetValue(h Handle[T], v T) error {
	if err := l.check(h); err != nil {
		return err
	}
	l.nodes[h.idx].value = v
	return nil
}

// AddToHead inserts v before the current head and returns its handle.
func (l *List[T]) AddToHead(v T) Handle[T] {
	i := l.alloc(v)
	l.linkFront(i)
	return l.handle(i)
}

// AddToTail inserts v after the current tail and returns its handle.
func (l *List[T]) AddToTail(v T) Handle[T] {
	i := l.alloc(v)
	l.linkBack(i)
	return l.handle(i)
}

// RemoveFromHead removes the first node and returns its value. On an empty
// list it returns the zero value and false.
func (l *List[T]) RemoveFromHead() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	i := l.head
	l.unlink(i)
	return l.release(i), true
}

// RemoveFromTail removes the last node and returns its value. On an empty
// list it returns the zero value and false.
func (l *List[T]) RemoveFromTail() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	i := l.tail
	l.unlink(i)
	return l.release(i), true
}

// Delete removes the node h refers to and returns its value. The order of
// the remaining nodes is preserved and h, like every other copy of it,
// becomes invalid.
func (l *List[T]) Delete(h Handle[T]) (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	if err := l.check(h); err != nil {
		return zero, err
	}
	l.unlink(h.idx)
	return l.release(h.idx), nil
}

// MoveToFront makes the node h refers to the new head. h stays valid.
func (l *List[T]) MoveToFront(h Handle[T]) error {
	if err := l.check(h); err != nil {
		return err
	}
	if l.head == h.idx {
		return nil
	}
	l.unlink(h.idx)
	l.linkFront(h.idx)
	return nil
}

// MoveToEnd makes the node h refers to the new tail. h stays valid.
func (l *List[T]) MoveToEnd(h Handle[T]) error {
	if err := l.check(h); err != nil {
		return err
	}
	if l.tail == h.idx {
		return nil
	}
	l.unlink(h.idx)
	l.linkBack(h.idx)
	return nil
}

// MaxFunc scans the list and returns the largest value under compare, which
// follows the cmp.Compare convention. The scan is seeded with the head value.
func (l *List[T]) MaxFunc(compare func(a, b T) int) (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	best := l.nodes[l.head].value
	for i := l.nodes[l.head].next; i != none; i = l.nodes[i].next {
		if v := l.nodes[i].value; compare(v, best) > 0 {
			best = v
		}
	}
	return best, nil
}

// Max returns the largest value in l, or ErrEmptyList.
func Max[T cmp.Ordered](l *List[T]) (T, error) {
	return l.MaxFunc(cmp.Compare[T])
}

func (l *List[T]) check(h Handle[T]) error {
	if !l.Contains(h) {
		return fmt.Errorf("handle %d@%d: %w", h.idx, h.gen, ErrForeignOrDetachedNode)
	}
	return nil
}

func (l *List[T]) handle(i int) Handle[T] {
	return Handle[T]{list: l, idx: i, gen: l.nodes[i].gen}
}

func (l *List[T]) alloc(v T) int {
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[T]{})
	}
	if k := len(l.free); k > 0 {
		i := l.free[k-1]
		l.free = l.free[:k-1]
		n := &l.nodes[i]
		n.value, n.live = v, true
		return i
	}
	l.nodes = append(l.nodes, node[T]{value: v, live: true})
	return len(l.nodes) - 1
}

// release frees slot i, which must already be unlinked, and returns the
// value it held.
func (l *List[T]) release(i int) T {
	n := &l.nodes[i]
	v := n.value
	var zero T
	n.value = zero
	n.live = false
	n.gen++
	l.free = append(l.free, i)
	return v
}

func (l *List[T]) linkFront(i int) {
	n := &l.nodes[i]
	n.prev = none
	n.next = l.head
	if l.head == none {
		l.tail = i
	} else {
		l.nodes[l.head].prev = i
	}
	l.head = i
	l.length++
}

func (l *List[T]) linkBack(i int) {
	n := &l.nodes[i]
	n.next = none
	n.prev = l.tail
	if l.tail == none {
		l.head = i
	} else {
		l.nodes[l.tail].next = i
	}
	l.tail = i
	l.length++
}

// unlink detaches slot i from its neighbours and clears its own links.
func (l *List[T]) unlink(i int) {
	n := &l.nodes[i]
	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = none, none
	l.length--
}
