// Package heap provides a generic array-backed binary min-heap.
//
// The heap is stored as an implicit tree: parent(i) = (i-1)/2,
// left(i) = 2i+1, right(i) = 2i+2. Every parent is <= its children.
package heap

import "golang.org/x/exp/constraints"

// MinHeap is a binary min-heap over an ordered element type.
type MinHeap[T constraints.Ordered] struct {
	items []T
}

func New[T constraints.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{}
}

// Heapify takes ownership of items and rearranges them bottom-up into heap
// order, O(n).
func Heapify[T constraints.Ordered](items []T) *MinHeap[T] {
	h := &MinHeap[T]{items: items}
	for i := (len(items) - 2) / 2; i >= 0; i-- {
		h.down(i)
	}
	return h
}

func (h *MinHeap[T]) Len() int {
	return len(h.items)
}

// Push appends v and sifts it up while its parent is larger.
func (h *MinHeap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the minimum. The root is swapped with the last
// element, the last element is dropped and the new root sifts down toward
// the smaller child. The second return is false if the heap was empty.
func (h *MinHeap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	n := len(h.items) - 1
	h.items[0], h.items[n] = h.items[n], h.items[0]
	v := h.items[n]
	h.items = h.items[:n]
	h.down(0)
	return v, true
}

// Peek returns the minimum without removing it.
func (h *MinHeap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

func (h *MinHeap[T]) up(i int) {
	for i > 0 && h.items[i] < h.items[(i-1)/2] {
		h.items[(i-1)/2], h.items[i] = h.items[i], h.items[(i-1)/2]
		i = (i - 1) / 2
	}
}

func (h *MinHeap[T]) down(i int) {
	for {
		smallest := i
		if l := 2*i + 1; l < len(h.items) && h.items[l] < h.items[smallest] {
			smallest = l
		}
		if r := 2*i + 2; r < len(h.items) && h.items[r] < h.items[smallest] {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// Sort returns a sorted copy of items using heap sort: heapify once, then
// pop until empty. O(n log n), not stable.
func Sort[T constraints.Ordered](items []T) []T {
	scratch := make([]T, len(items))
	copy(scratch, items)
	h := Heapify(scratch)
	out := make([]T, 0, len(items))
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
