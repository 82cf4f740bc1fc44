package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomanToInt(t *testing.T) {
	assert.Equal(t, 67, RomanToInt("LXVII"))
	assert.Equal(t, 67, RomanToInt("LXvII")) // case insensitive
	assert.Equal(t, 4, RomanToInt("IV"))
	assert.Equal(t, 9, RomanToInt("IX"))
	assert.Equal(t, 1994, RomanToInt("MCMXCIV"))
	assert.Equal(t, 0, RomanToInt(""))
}

func TestValidParentheses(t *testing.T) {
	valid := []string{"()", "()[]{}", "([])", "({})([])[]"}
	for _, s := range valid {
		assert.True(t, ValidParentheses(s), "input %q", s)
	}

	invalid := []string{"(]", "(", ")", "([)]", "((("}
	for _, s := range invalid {
		assert.False(t, ValidParentheses(s), "input %q", s)
	}

	assert.True(t, ValidParentheses(""))
}

func TestLongestCommonPrefix(t *testing.T) {
	assert.Equal(t, "fl", LongestCommonPrefix([]string{"flower", "flow", "flight"}))
	assert.Equal(t, "", LongestCommonPrefix([]string{"dog", "racecar", "car"}))
	assert.Equal(t, "a", LongestCommonPrefix([]string{"a"}))
	assert.Equal(t, "", LongestCommonPrefix(nil))
	assert.Equal(t, "", LongestCommonPrefix([]string{"abc", ""}))
}

func TestCountPrefixSuffixPairs(t *testing.T) {
	assert.Equal(t, 4, CountPrefixSuffixPairs([]string{"a", "aba", "ababa", "aa"}))
	assert.Equal(t, 2, CountPrefixSuffixPairs([]string{"pa", "papa", "ma", "mama"}))
	assert.Equal(t, 0, CountPrefixSuffixPairs([]string{"abab", "ab"}))
	assert.Equal(t, 0, CountPrefixSuffixPairs([]string{"solo"}))
}

func TestCanConstructKPalindromes(t *testing.T) {
	assert.True(t, CanConstructKPalindromes("annabelle", 2))
	assert.False(t, CanConstructKPalindromes("leetcode", 3))
	assert.True(t, CanConstructKPalindromes("true", 4))
	assert.False(t, CanConstructKPalindromes("ab", 3)) // fewer chars than k
}
