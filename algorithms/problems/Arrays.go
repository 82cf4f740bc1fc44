// Package problems collects isolated interview exercises. Each function
// is self-contained and takes explicit inputs, no package state.
package problems

// MaxWindowSum returns the maximum sum over all contiguous windows of
// length k. A window size outside [1, len(nums)] yields 0.
func MaxWindowSum(nums []int, k int) int {
	if k < 1 || k > len(nums) {
		return 0
	}
	maxSum, windowSum := 0, 0
	for i, v := range nums {
		windowSum += v
		if i >= k-1 {
			if windowSum > maxSum {
				maxSum = windowSum
			}
			windowSum -= nums[i-k+1]
		}
	}
	return maxSum
}

// MaxRowSum returns the largest row sum of a jagged matrix, 0 when empty.
func MaxRowSum(rows [][]int) int {
	maxSum := 0
	for _, row := range rows {
		sum := 0
		for _, v := range row {
			sum += v
		}
		if sum > maxSum {
			maxSum = sum
		}
	}
	return maxSum
}

func reverseRange(nums []int, start, end int) {
	for start < end {
		nums[start], nums[end] = nums[end], nums[start]
		start++
		end--
	}
}

// RotateRight rotates nums right by k positions in place using the
// triple-reversal trick.
func RotateRight(nums []int, k int) {
	n := len(nums)
	if n == 0 {
		return
	}
	k %= n
	reverseRange(nums, 0, n-1)
	reverseRange(nums, 0, k-1)
	reverseRange(nums, k, n-1)
}

// MoveZeroes shifts every zero to the tail in place, keeping the relative
// order of the non-zero elements.
func MoveZeroes(nums []int) {
	insert := 0
	for _, v := range nums {
		if v != 0 {
			nums[insert] = v
			insert++
		}
	}
	for ; insert < len(nums); insert++ {
		nums[insert] = 0
	}
}
