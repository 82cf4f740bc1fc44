package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxWindowSum(t *testing.T) {
	assert.Equal(t, 25, MaxWindowSum([]int{15, 2, 8, 9, 5, 6, 7, 8}, 3))
	assert.Equal(t, 9, MaxWindowSum([]int{2, 1, 5, 1, 3, 2}, 3))
	assert.Equal(t, 6, MaxWindowSum([]int{1, 2, 3}, 3))

	// malformed input yields the zero default
	assert.Equal(t, 0, MaxWindowSum([]int{}, 3))
	assert.Equal(t, 0, MaxWindowSum([]int{1, 2}, 0))
	assert.Equal(t, 0, MaxWindowSum([]int{1, 2}, 5))
}

func TestMaxRowSum(t *testing.T) {
	assert.Equal(t, 24, MaxRowSum([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	assert.Equal(t, 0, MaxRowSum(nil))
	assert.Equal(t, 5, MaxRowSum([][]int{{}, {5}, {-1, -2}}))
}

func TestRotateRight(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5, 6, 7}
	RotateRight(nums, 3)
	assert.Equal(t, []int{5, 6, 7, 1, 2, 3, 4}, nums)

	same := []int{1, 2, 3}
	RotateRight(same, 3) // full rotation, unchanged
	assert.Equal(t, []int{1, 2, 3}, same)

	RotateRight(nil, 2) // no panic on empty
}

func TestMoveZeroes(t *testing.T) {
	nums := []int{0, 1, 0, 3, 12}
	MoveZeroes(nums)
	assert.Equal(t, []int{1, 3, 12, 0, 0}, nums)

	allZero := []int{0, 0}
	MoveZeroes(allZero)
	assert.Equal(t, []int{0, 0}, allZero)

	noZero := []int{4, 5}
	MoveZeroes(noZero)
	assert.Equal(t, []int{4, 5}, noZero)
}
