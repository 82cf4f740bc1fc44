// Package bst provides an unbalanced binary search tree.
//
// Invariant: all values in a node's left subtree are < the node's value,
// all values in its right subtree are > the node's value. Duplicates are
// never stored.
package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNotImplemented marks operations that are deliberate placeholders.
var ErrNotImplemented = errors.New("not implemented")

type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree. Emptiness is tracked by the root pointer,
// so the zero value of T is an ordinary key.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

func New[T constraints.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

func (t *Tree[T]) Len() int {
	return t.size
}

// Insert descends to the correct leaf position and attaches v there.
// Inserting a value already present is a no-op.
func (t *Tree[T]) Insert(v T) {
	if t.root == nil {
		t.root = &node[T]{value: v}
		t.size++
		return
	}
	curr := t.root
	for {
		switch {
		case v == curr.value:
			return
		case v < curr.value:
			if curr.left == nil {
				curr.left = &node[T]{value: v}
				t.size++
				return
			}
			curr = curr.left
		default:
			if curr.right == nil {
				curr.right = &node[T]{value: v}
				t.size++
				return
			}
			curr = curr.right
		}
	}
}

// Search reports whether v is present.
func (t *Tree[T]) Search(v T) bool {
	curr := t.root
	for curr != nil {
		switch {
		case v == curr.value:
			return true
		case v < curr.value:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	return false
}

// Min returns the smallest stored value.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	curr := t.root
	for curr.left != nil {
		curr = curr.left
	}
	return curr.value, true
}

// InOrder returns all values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// PreOrder returns all values in root-left-right order.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Delete is a placeholder. todo: three-case removal (leaf, one child,
// in-order successor swap).
func (t *Tree[T]) Delete(v T) error {
	return ErrNotImplemented
}
