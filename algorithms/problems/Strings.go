package problems

import (
	"strings"

	"github.com/Be1newinner/dsa-go/containers/stack"
)

var romanValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// RomanToInt sums the symbol values of s, subtracting when a smaller
// symbol precedes a larger one (IV = 4). Case insensitive, unknown runes
// count as zero.
func RomanToInt(s string) int {
	num := 0
	prev := 0
	for _, r := range strings.ToUpper(s) {
		v := romanValues[r]
		num += v
		if prev < v {
			num -= 2 * prev
		}
		prev = v
	}
	return num
}

var bracketPairs = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

// ValidParentheses reports whether every bracket in s is closed by the
// matching bracket type in the correct order.
func ValidParentheses(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	open := stack.New[rune]()
	for _, r := range s {
		switch r {
		case '(', '{', '[':
			open.Push(r)
		case ')', '}', ']':
			top, ok := open.Pop()
			if !ok || top != bracketPairs[r] {
				return false
			}
		}
	}
	return open.Empty()
}

// LongestCommonPrefix returns the longest prefix shared by every string
// in strs, "" when there is none.
func LongestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// CountPrefixSuffixPairs counts index pairs i < j where words[i] is both
// a prefix and a suffix of words[j].
func CountPrefixSuffixPairs(words []string) int {
	count := 0
	for i := 0; i < len(words)-1; i++ {
		for j := i + 1; j < len(words); j++ {
			if strings.HasPrefix(words[j], words[i]) && strings.HasSuffix(words[j], words[i]) {
				count++
			}
		}
	}
	return count
}

// CanConstructKPalindromes reports whether all characters of s can be
// split into exactly k palindromes. Each palindrome absorbs at most one
// odd character count, so the odd count must not exceed k.
func CanConstructKPalindromes(s string, k int) bool {
	if len(s) < k {
		return false
	}
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	odd := 0
	for _, c := range counts {
		if c%2 == 1 {
			odd++
		}
	}
	return odd <= k
}
