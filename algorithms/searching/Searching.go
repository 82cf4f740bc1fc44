// Package searching implements binary search over sorted slices.
package searching

import "golang.org/x/exp/constraints"

// Binary returns the index of target in the sorted slice items, or -1 if
// absent. Iterative halving of the [start, end] range.
func Binary[T constraints.Ordered](items []T, target T) int {
	start, end := 0, len(items)-1
	for start <= end {
		mid := (start + end) / 2
		switch {
		case items[mid] == target:
			return mid
		case target < items[mid]:
			end = mid - 1
		default:
			start = mid + 1
		}
	}
	return -1
}

// InsertPosition returns the index of target in the sorted slice items, or
// the index at which it would be inserted to keep the slice sorted.
func InsertPosition[T constraints.Ordered](items []T, target T) int {
	left, right := 0, len(items)
	for left < right {
		mid := (left + right) / 2
		if items[mid] >= target {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}
