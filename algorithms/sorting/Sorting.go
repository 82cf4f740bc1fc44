// Package sorting implements the classic comparison sorts plus counting
// sort. The in-place sorts mutate their argument, Merge and Counting
// return a new slice.
package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/Be1newinner/dsa-go/containers/heap"
)

// Bubble repeatedly swaps adjacent out-of-order elements. A pass with no
// swap means the slice is sorted, so it exits early.
func Bubble[T constraints.Ordered](items []T) {
	for i := 0; i < len(items)-1; i++ {
		swapped := false
		for j := 0; j < len(items)-i-1; j++ {
			if items[j] > items[j+1] {
				items[j], items[j+1] = items[j+1], items[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection moves the minimum of the unsorted tail to its final position
// on every pass.
func Selection[T constraints.Ordered](items []T) {
	for i := 0; i < len(items); i++ {
		minimum := i
		for j := i + 1; j < len(items); j++ {
			if items[j] < items[minimum] {
				minimum = j
			}
		}
		if i != minimum {
			items[i], items[minimum] = items[minimum], items[i]
		}
	}
}

// Insertion grows a sorted prefix one element at a time.
func Insertion[T constraints.Ordered](items []T) {
	for i := 1; i < len(items); i++ {
		v := items[i]
		j := i - 1
		for j >= 0 && items[j] > v {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = v
	}
}

// Merge sorts by recursive halving and allocating merges. Stable.
func Merge[T constraints.Ordered](items []T) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	mid := len(items) / 2
	return merge(Merge(items[:mid]), Merge(items[mid:]))
}

func merge[T constraints.Ordered](left, right []T) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}

// Quick sorts in place with Lomuto partitioning, last element as pivot.
func Quick[T constraints.Ordered](items []T) {
	if len(items) < 2 {
		return
	}
	pivot := items[len(items)-1]
	i := 0
	for j := 0; j < len(items)-1; j++ {
		if items[j] < pivot {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[len(items)-1] = items[len(items)-1], items[i]
	Quick(items[:i])
	Quick(items[i+1:])
}

// Heap returns a sorted copy via the array min-heap.
func Heap[T constraints.Ordered](items []T) []T {
	return heap.Sort(items)
}

// Counting sorts integers by occurrence counting over the value range.
// Only worthwhile when max-min is small relative to len(items).
func Counting(items []int) []int {
	if len(items) == 0 {
		return nil
	}
	lo, hi := items[0], items[0]
	for _, v := range items[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	counts := make([]int, hi-lo+1)
	for _, v := range items {
		counts[v-lo]++
	}
	out := make([]int, 0, len(items))
	for i, c := range counts {
		for ; c > 0; c-- {
			out = append(out, lo+i)
		}
	}
	return out
}
