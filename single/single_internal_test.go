package single

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chain(vals ...int) (head, tail *Node[int]) {
	for i := len(vals) - 1; i >= 0; i-- {
		head = &Node[int]{Val: vals[i], next: head}
		if tail == nil {
			tail = head
		}
	}
	return head, tail
}

func TestCheckCycle(t *testing.T) {
	assert := assert.New(t)

	head, tail := chain(1, 2, 3, 4)
	// 1 -> 2 -> 3 -> 4 -> 2 -> ...
	tail.next = head.next
	stray := &Node[int]{Val: 9}
	assert.ErrorIs(NewFrom(head, stray).Check(), ErrCycle)

	// the tail sits on the loop, so the walk reaches it first
	assert.ErrorIs(NewFrom(head, tail).Check(), ErrTailHasSuccessor)
}

func TestWithNilLogger(t *testing.T) {
	assert := assert.New(t)

	l := New[int](WithLogger(nil))
	assert.NotNil(l.log)
	assert.ErrorIs(l.Reverse(), ErrEmptyList)
}

func TestReverseRelinksEveryNode(t *testing.T) {
	assert := assert.New(t)

	head, tail := chain(1, 2, 3)
	l := NewFrom(head, tail)
	assert.NoError(l.Reverse())

	assert.Equal(3, l.head.Val)
	assert.Equal(2, l.head.next.Val)
	assert.Equal(1, l.head.next.next.Val)
	assert.Same(l.tail, l.head.next.next)
	assert.Nil(l.tail.next)
}

func TestReverseChainLoopingThroughHead(t *testing.T) {
	assert := assert.New(t)

	// h -> a -> h -> ...
	h := &Node[int]{Val: 1}
	a := &Node[int]{Val: 2, next: h}
	h.next = a
	l := NewFrom(h, a)

	assert.NoError(l.Reverse())
	assert.Same(h, l.head)
	assert.Same(h, l.tail)
	assert.Nil(l.tail.next)
	assert.Equal("1", l.String())
}
