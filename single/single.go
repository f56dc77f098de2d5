// Package single implements a singly linked list that tracks both ends of
// its chain, so appends run in constant time while positional inserts and
// reversal walk the chain once.
//
// The list reports two non-fatal conditions, an insert at a negative position
// and a reversal of an empty list. Both are returned as errors and also
// written as a one-line diagnostic to the list's logger; the list is left
// untouched and callers are expected to carry on.
package single

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goose-lang/std"
	"go.uber.org/zap"
)

var (
	ErrInvalidPosition = errors.New("position must be a non-negative integer")
	ErrEmptyList       = errors.New("cannot reverse an empty list")
)

// Diagnostic lines written to the list's logger.
const (
	MsgInvalidPosition = "Position must be a non-negative integer."
	MsgEmptyReverse    = "Cannot reverse an empty list."
	MsgReversed        = "List successfully reversed."
	MsgEmptyList       = "The list is empty."
	contentsPrefix     = "List contents: "
	separator          = " -> "
)

// List is a singly linked list. The zero value is not usable; build one with
// New or NewFrom.
type List[T any] struct {
	head *Node[T]
	// tail observes the last node of the chain owned through head.
	tail *Node[T]
	log  *zap.Logger
}

type options struct {
	logger *zap.Logger
}

// Option configures a List.
type Option func(*options)

// WithLogger sends the list's diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// New returns an empty list.
func New[T any](opts ...Option) *List[T] {
	o := buildOptions(opts)
	return &List[T]{log: o.logger}
}

// NewFrom returns a list over a chain the caller already built. The pair is
// taken on trust: nothing checks that tail is reachable from head or that
// tail is the last node. Call Check to verify it.
func NewFrom[T any](head, tail *Node[T], opts ...Option) *List[T] {
	l := New[T](opts...)
	l.head = head
	l.tail = tail
	return l
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Append adds val at the end of the list in O(1).
func (l *List[T]) Append(val T) {
	n := &Node[T]{Val: val}
	if l.head == nil {
		l.head = n
		l.tail = n
		return
	}
	l.tail.next = n
	l.tail = n
}

// InsertAt inserts val so that it ends up at the zero-based index position.
// Positions past the end append. A negative position leaves the list
// unchanged and returns ErrInvalidPosition.
func (l *List[T]) InsertAt(val T, position int) error {
	if position < 0 {
		l.log.Error(MsgInvalidPosition)
		return fmt.Errorf("insert at %d: %w", position, ErrInvalidPosition)
	}

	n := &Node[T]{Val: val}
	if l.head == nil || position == 0 {
		n.next = l.head
		l.head = n
		if l.tail == nil {
			l.tail = n
		}
		return nil
	}

	// prev lags one node behind cur; the new node goes between them.
	prev := l.head
	cur := l.head.next
	index := 1
	for cur != nil && index < position {
		prev = cur
		cur = cur.next
		index++
	}
	std.Assert(cur == nil || index == position)

	if cur == nil {
		prev.next = n
		l.tail = n
		return nil
	}
	n.next = cur
	prev.next = n
	return nil
}

// Reverse flips the chain in place using constant extra space. Reversing an
// empty list returns ErrEmptyList.
func (l *List[T]) Reverse() error {
	if l.head == nil {
		l.log.Info(MsgEmptyReverse)
		return ErrEmptyList
	}

	oldHead := l.head
	var prev, next *Node[T]
	cur := l.head
	for cur != nil {
		next = cur.next
		cur.next = prev
		prev = cur
		cur = next
	}

	// A chain that loops back through its head leaves it pointing forward.
	oldHead.next = nil
	l.tail = oldHead
	l.head = prev
	l.log.Info(MsgReversed)
	return nil
}

// String renders the values from head to tail joined by " -> ".
func (l *List[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(separator)
		}
		fmt.Fprint(&sb, n.Val)
	}
	return sb.String()
}

// PrintList writes the list contents as a single diagnostic line and returns
// that line.
func (l *List[T]) PrintList() string {
	line := MsgEmptyList
	if l.head != nil {
		line = contentsPrefix + l.String()
	}
	l.log.Info(line)
	return line
}

// Values returns the payloads from head to tail.
func (l *List[T]) Values() []T {
	var vals []T
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, n.Val)
	}
	return vals
}

// Len counts the nodes reachable from head.
func (l *List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}
