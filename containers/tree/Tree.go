// Package tree provides a general n-ary tree and a binary tree with
// level-order construction.
package tree

import (
	"fmt"
	"io"
	"strings"
)

// Node is an n-ary tree node with ordered children and a parent link.
type Node struct {
	Data     string
	Parent   *Node
	Children []*Node
}

func NewNode(data string) *Node {
	return &Node{Data: data}
}

// AddChild appends child and sets its parent link.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Depth returns the number of ancestors above n.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Print writes the subtree rooted at n to w, one node per line, indented
// by depth.
func (n *Node) Print(w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", n.Depth()), n.Data)
	for _, child := range n.Children {
		child.Print(w)
	}
}
