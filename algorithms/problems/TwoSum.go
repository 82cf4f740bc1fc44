package problems

import "sort"

// TwoSum returns the indices of the two elements summing to target, nil
// when no pair exists. Single pass with a complement lookup table.
func TwoSum(nums []int, target int) []int {
	lookup := make(map[int]int, len(nums))
	for i, v := range nums {
		if j, ok := lookup[target-v]; ok {
			return []int{j, i}
		}
		lookup[v] = i
	}
	return nil
}

// TwoSumSorted returns 1-based indices of the pair summing to target in a
// sorted slice, nil when no pair exists. Two pointers, constant space.
func TwoSumSorted(nums []int, target int) []int {
	left, right := 0, len(nums)-1
	for left < right {
		sum := nums[left] + nums[right]
		switch {
		case sum == target:
			return []int{left + 1, right + 1}
		case sum < target:
			left++
		default:
			right--
		}
	}
	return nil
}

// ThreeSum returns all unique triplets summing to zero. Sorts a copy of
// the input, then walks two pointers per anchor, skipping duplicates.
func ThreeSum(nums []int) [][]int {
	sorted := make([]int, len(nums))
	copy(sorted, nums)
	sort.Ints(sorted)

	var triplets [][]int
	for i := 0; i < len(sorted)-2; i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}
		left, right := i+1, len(sorted)-1
		for left < right {
			sum := sorted[i] + sorted[left] + sorted[right]
			switch {
			case sum < 0:
				left++
			case sum > 0:
				right--
			default:
				triplets = append(triplets, []int{sorted[i], sorted[left], sorted[right]})
				left++
				for left < right && sorted[left] == sorted[left-1] {
					left++
				}
				right--
				for left < right && sorted[right] == sorted[right+1] {
					right--
				}
			}
		}
	}
	return triplets
}
