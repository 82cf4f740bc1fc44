package problems

// Permutations returns every ordering of items, generated by backtracking
// with a used-marker per index.
func Permutations[T any](items []T) [][]T {
	var result [][]T
	current := make([]T, 0, len(items))
	used := make([]bool, len(items))

	var backtrack func()
	backtrack = func() {
		if len(current) == len(items) {
			perm := make([]T, len(current))
			copy(perm, current)
			result = append(result, perm)
			return
		}
		for i := range items {
			if used[i] {
				continue
			}
			current = append(current, items[i])
			used[i] = true

			backtrack()

			used[i] = false
			current = current[:len(current)-1]
		}
	}
	backtrack()
	return result
}

// Subsets returns every subset of items, the empty set first. Each level
// of the recursion either stops or extends the current subset with a
// later element.
func Subsets[T any](items []T) [][]T {
	var result [][]T
	var current []T

	var backtrack func(index int)
	backtrack = func(index int) {
		subset := make([]T, len(current))
		copy(subset, current)
		result = append(result, subset)

		for i := index; i < len(items); i++ {
			current = append(current, items[i])
			backtrack(i + 1)
			current = current[:len(current)-1]
		}
	}
	backtrack(0)
	return result
}
