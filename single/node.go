package single

// Node is one link of a List. The list owns the chain starting at its head;
// a node never points back at its predecessor or at the list.
type Node[T any] struct {
	Val  T
	next *Node[T]
}

// NewNode returns a node holding val whose successor is next (nil for none).
func NewNode[T any](val T, next *Node[T]) *Node[T] {
	return &Node[T]{Val: val, next: next}
}

// Next returns the successor of n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}
