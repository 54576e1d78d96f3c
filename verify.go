package dllist

import "fmt"

// Verify walks l in both directions and reports the first structural
// inconsistency it finds, wrapped in ErrCorrupt.
func (l *List[T]) Verify() error {
	if (l.length == 0) != (l.head == none) || (l.head == none) != (l.tail == none) {
		return fmt.Errorf("length %d with head %d tail %d: %w", l.length, l.head, l.tail, ErrCorrupt)
	}
	if l.length == 0 {
		return nil
	}
	if l.length == 1 && l.head != l.tail {
		return fmt.Errorf("single node but head %d != tail %d: %w", l.head, l.tail, ErrCorrupt)
	}
	if p := l.nodes[l.head].prev; p != none {
		return fmt.Errorf("head %d has prev %d: %w", l.head, p, ErrCorrupt)
	}
	if n := l.nodes[l.tail].next; n != none {
		return fmt.Errorf("tail %d has next %d: %w", l.tail, n, ErrCorrupt)
	}

	// a walk longer than the arena has revisited a slot
	limit := len(l.nodes)

	count, last := 0, none
	for i := l.head; i != none; i = l.nodes[i].next {
		if count++; count > limit {
			return fmt.Errorf("forward walk cycles: %w", ErrCorrupt)
		}
		n := &l.nodes[i]
		if !n.live {
			return fmt.Errorf("slot %d reachable but freed: %w", i, ErrCorrupt)
		}
		if n.prev != last {
			return fmt.Errorf("slot %d prev %d, want %d: %w", i, n.prev, last, ErrCorrupt)
		}
		last = i
	}
	if last != l.tail {
		return fmt.Errorf("forward walk ends at %d, tail is %d: %w", last, l.tail, ErrCorrupt)
	}
	if count != l.length {
		return fmt.Errorf("forward walk saw %d nodes, length %d: %w", count, l.length, ErrCorrupt)
	}

	count, last = 0, none
	for i := l.tail; i != none; i = l.nodes[i].prev {
		if count++; count > limit {
			return fmt.Errorf("backward walk cycles: %w", ErrCorrupt)
		}
		if n := l.nodes[i].next; n != last {
			return fmt.Errorf("slot %d next %d, want %d: %w", i, n, last, ErrCorrupt)
		}
		last = i
	}
	if last != l.head {
		return fmt.Errorf("backward walk ends at %d, head is %d: %w", last, l.head, ErrCorrupt)
	}
	if count != l.length {
		return fmt.Errorf("backward walk saw %d nodes, length %d: %w", count, l.length, ErrCorrupt)
	}
	return nil
}
