package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Empty())

	if _, ok := s.Pop(); ok {
		t.Error("pop on empty stack must fail")
	}
	if _, ok := s.Peek(); ok {
		t.Error("peek on empty stack must fail")
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	// last in, first out
	for want := 3; want >= 1; want-- {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.Empty())
}
