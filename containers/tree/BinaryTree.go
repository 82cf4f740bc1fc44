package tree

import (
	"fmt"
	"strings"

	"github.com/Be1newinner/dsa-go/containers/queue"
)

// BinaryNode is a binary tree node.
type BinaryNode[T any] struct {
	Value T
	Left  *BinaryNode[T]
	Right *BinaryNode[T]
}

// BuildLevelOrder constructs a binary tree from a level-order slice where a
// nil entry is a missing node. Children of a missing node must also be nil
// entries, as in the usual LeetCode encoding.
func BuildLevelOrder[T any](values []*T) *BinaryNode[T] {
	if len(values) == 0 || values[0] == nil {
		return nil
	}
	root := &BinaryNode[T]{Value: *values[0]}
	pending := queue.New[*BinaryNode[T]]()
	pending.Enqueue(root)

	i := 1
	for !pending.Empty() && i < len(values) {
		curr, _ := pending.Dequeue()

		if i < len(values) && values[i] != nil {
			curr.Left = &BinaryNode[T]{Value: *values[i]}
			pending.Enqueue(curr.Left)
		}
		i++

		if i < len(values) && values[i] != nil {
			curr.Right = &BinaryNode[T]{Value: *values[i]}
			pending.Enqueue(curr.Right)
		}
		i++
	}
	return root
}

// InOrder returns the subtree values in left-root-right order.
func (n *BinaryNode[T]) InOrder() []T {
	if n == nil {
		return nil
	}
	out := n.Left.InOrder()
	out = append(out, n.Value)
	return append(out, n.Right.InOrder()...)
}

// Paths returns every root-to-leaf path rendered as "1->2->5".
func (n *BinaryNode[T]) Paths() []string {
	if n == nil {
		return nil
	}
	var paths []string
	var walk func(node *BinaryNode[T], prefix []string)
	walk = func(node *BinaryNode[T], prefix []string) {
		prefix = append(prefix, fmt.Sprintf("%v", node.Value))
		if node.Left == nil && node.Right == nil {
			paths = append(paths, strings.Join(prefix, "->"))
			return
		}
		if node.Left != nil {
			walk(node.Left, prefix)
		}
		if node.Right != nil {
			walk(node.Right, prefix)
		}
	}
	walk(n, nil)
	return paths
}
