package single

import "errors"

var (
	ErrHeadTailMismatch = errors.New("head and tail disagree on emptiness")
	ErrTailUnreachable  = errors.New("tail is not reachable from head")
	ErrTailHasSuccessor = errors.New("tail has a successor")
	ErrCycle            = errors.New("chain contains a cycle")
)

// Check verifies the structural invariants of l: head and tail are both nil
// or both set, tail is reachable from head, and tail is the last node.
//
// Lists built with New and mutated only through List methods always pass.
// Check exists for lists built with NewFrom.
func (l *List[T]) Check() error {
	if (l.head == nil) != (l.tail == nil) {
		return ErrHeadTailMismatch
	}
	if l.head == nil {
		return nil
	}

	slow, fast := l.head, l.head
	for {
		if slow == l.tail {
			break
		}
		slow = slow.next
		if slow == nil {
			return ErrTailUnreachable
		}
		// fast moves two links per step and only meets slow on a cycle.
		if fast != nil && fast.next != nil {
			fast = fast.next.next
			if fast == slow && slow != l.tail {
				return ErrCycle
			}
		}
	}
	if l.tail.next != nil {
		return ErrTailHasSuccessor
	}
	return nil
}
