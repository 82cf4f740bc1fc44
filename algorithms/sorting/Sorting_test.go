package sorting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fixtures = [][]int{
	{},
	{1},
	{2, 1},
	{99, 98, 97, 96, 95, 94, 93, 92, 91, 90},
	{10, 2, 5, 99, 14, 154, 22, 1, 5, 3, 9, 14},
	{1, 2, 3, 4, 5},
	{7, 7, 7, 7},
	{-3, 0, -10, 5, 0},
}

func sortedCopy(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	return out
}

func TestInPlaceSorts(t *testing.T) {
	inPlace := map[string]func([]int){
		"bubble":    Bubble[int],
		"selection": Selection[int],
		"insertion": Insertion[int],
		"quick":     Quick[int],
	}
	for name, sortFn := range inPlace {
		t.Run(name, func(t *testing.T) {
			for _, fixture := range fixtures {
				in := make([]int, len(fixture))
				copy(in, fixture)
				sortFn(in)
				assert.Equal(t, sortedCopy(fixture), in, "input %v", fixture)
			}
		})
	}
}

func TestCopyingSorts(t *testing.T) {
	copying := map[string]func([]int) []int{
		"merge":    Merge[int],
		"heap":     Heap[int],
		"counting": Counting,
	}
	for name, sortFn := range copying {
		t.Run(name, func(t *testing.T) {
			for _, fixture := range fixtures {
				in := make([]int, len(fixture))
				copy(in, fixture)
				got := sortFn(in)
				if len(fixture) == 0 {
					assert.Empty(t, got)
				} else {
					assert.Equal(t, sortedCopy(fixture), got, "input %v", fixture)
				}
				// input untouched
				assert.Equal(t, fixture, in)
			}
		})
	}
}

func TestSortsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		fixture := make([]int, rng.Intn(300))
		for i := range fixture {
			fixture[i] = rng.Intn(1000) - 500
		}
		want := sortedCopy(fixture)

		quick := make([]int, len(fixture))
		copy(quick, fixture)
		Quick(quick)
		assert.Equal(t, want, quick)

		if len(fixture) > 0 {
			assert.Equal(t, want, Counting(fixture))
		}
		assert.Equal(t, want, Merge(fixture))
		assert.Equal(t, want, Heap(fixture))
	}
}

func TestStringSorts(t *testing.T) {
	in := []string{"pear", "apple", "fig", "banana"}
	want := []string{"apple", "banana", "fig", "pear"}

	bubbled := make([]string, len(in))
	copy(bubbled, in)
	Bubble(bubbled)
	assert.Equal(t, want, bubbled)

	assert.Equal(t, want, Merge(in))
}
