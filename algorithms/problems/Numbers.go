package problems

// Factorial returns n!, or -1 for negative n.
func Factorial(n int) int {
	if n < 0 {
		return -1
	}
	result := 1
	for ; n > 1; n-- {
		result *= n
	}
	return result
}
