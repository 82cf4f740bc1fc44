package list

import (
	"fmt"
	"strings"
)

// Node is a singly linked list node.
type Node[T comparable] struct {
	Value T
	Next  *Node[T]
}

// List is a singly linked list with head pointer and cached size.
type List[T comparable] struct {
	head *Node[T]
	size int
}

func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Append inserts v at the end of the list.
func (l *List[T]) Append(v T) {
	n := &Node[T]{Value: v}
	l.size++
	if l.head == nil {
		l.head = n
		return
	}
	curr := l.head
	for curr.Next != nil {
		curr = curr.Next
	}
	curr.Next = n
}

// Prepend inserts v at the front of the list.
func (l *List[T]) Prepend(v T) {
	l.head = &Node[T]{Value: v, Next: l.head}
	l.size++
}

// DeleteValue unlinks the first node holding v, traversing from the head.
// Reports whether a node was removed.
func (l *List[T]) DeleteValue(v T) bool {
	var prev *Node[T]
	curr := l.head
	for curr != nil && curr.Value != v {
		prev = curr
		curr = curr.Next
	}
	if curr == nil {
		return false
	}
	if prev == nil {
		l.head = curr.Next
	} else {
		prev.Next = curr.Next
	}
	curr.Next = nil
	l.size--
	return true
}

// Values returns the list contents in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for curr := l.head; curr != nil; curr = curr.Next {
		out = append(out, curr.Value)
	}
	return out
}

// String renders the list as "a => b => None".
func (l *List[T]) String() string {
	var sb strings.Builder
	for curr := l.head; curr != nil; curr = curr.Next {
		fmt.Fprintf(&sb, "%v => ", curr.Value)
	}
	sb.WriteString("None")
	return sb.String()
}

// Reverse reverses the chain starting at head in place and returns the new head.
func Reverse[T comparable](head *Node[T]) *Node[T] {
	var prev *Node[T]
	curr := head
	for curr != nil {
		next := curr.Next
		curr.Next = prev
		prev = curr
		curr = next
	}
	return prev
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	l.head = Reverse(l.head)
}

// HasCycle reports whether the chain starting at head loops back on itself.
// Floyd tortoise and hare.
func HasCycle[T comparable](head *Node[T]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}
	return false
}
