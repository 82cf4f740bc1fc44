package problems

import "github.com/Be1newinner/dsa-go/containers/list"

// AddTwoNumbers adds two non-negative integers stored as linked lists of
// digits in reverse order and returns the sum in the same encoding.
// Handles lists of unequal length and a trailing carry.
func AddTwoNumbers(l1, l2 *list.Node[int]) *list.Node[int] {
	dummy := &list.Node[int]{}
	curr := dummy
	carry := 0
	for l1 != nil || l2 != nil || carry != 0 {
		sum := carry
		if l1 != nil {
			sum += l1.Value
			l1 = l1.Next
		}
		if l2 != nil {
			sum += l2.Value
			l2 = l2.Next
		}
		carry = sum / 10
		curr.Next = &list.Node[int]{Value: sum % 10}
		curr = curr.Next
	}
	return dummy.Next
}

// MergeSortedLists splices two sorted chains into one sorted chain using
// a dummy head. The input nodes are reused, not copied.
func MergeSortedLists(l1, l2 *list.Node[int]) *list.Node[int] {
	dummy := &list.Node[int]{}
	curr := dummy
	for l1 != nil && l2 != nil {
		if l1.Value < l2.Value {
			curr.Next = l1
			l1 = l1.Next
		} else {
			curr.Next = l2
			l2 = l2.Next
		}
		curr = curr.Next
	}
	if l1 != nil {
		curr.Next = l1
	} else {
		curr.Next = l2
	}
	return dummy.Next
}
