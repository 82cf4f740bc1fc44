package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListAppendPrepend(t *testing.T) {
	l := New[string]()
	l.Append("Hi")
	l.Append("Bye")
	l.Append("Nye")
	l.Prepend("Start")

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []string{"Start", "Hi", "Bye", "Nye"}, l.Values())
	assert.Equal(t, "Start => Hi => Bye => Nye => None", l.String())
}

func TestListDeleteValue(t *testing.T) {
	t.Run("head", func(t *testing.T) {
		l := New(1, 2, 3)
		assert.True(t, l.DeleteValue(1))
		assert.Equal(t, []int{2, 3}, l.Values())
	})

	t.Run("middle", func(t *testing.T) {
		l := New(1, 2, 3)
		assert.True(t, l.DeleteValue(2))
		assert.Equal(t, []int{1, 3}, l.Values())
	})

	t.Run("tail", func(t *testing.T) {
		l := New(1, 2, 3)
		assert.True(t, l.DeleteValue(3))
		assert.Equal(t, []int{1, 2}, l.Values())
	})

	t.Run("absent", func(t *testing.T) {
		l := New(1, 2, 3)
		assert.False(t, l.DeleteValue(42))
		assert.Equal(t, 3, l.Len())
	})

	// zero is an ordinary value, not an empty marker
	t.Run("zero value", func(t *testing.T) {
		l := New(0, 1)
		assert.True(t, l.DeleteValue(0))
		assert.Equal(t, []int{1}, l.Values())
	})
}

func TestListReverse(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	l.Reverse()
	assert.Equal(t, []int{5, 4, 3, 2, 1}, l.Values())

	empty := New[int]()
	empty.Reverse()
	assert.Empty(t, empty.Values())
}

func TestHasCycle(t *testing.T) {
	t.Run("acyclic", func(t *testing.T) {
		l := New(1, 2, 3)
		assert.False(t, HasCycle(l.Head()))
	})

	t.Run("nil head", func(t *testing.T) {
		assert.False(t, HasCycle[int](nil))
	})

	t.Run("cyclic", func(t *testing.T) {
		a := &Node[int]{Value: 1}
		b := &Node[int]{Value: 2}
		c := &Node[int]{Value: 3}
		a.Next = b
		b.Next = c
		c.Next = b // cycle back to b
		assert.True(t, HasCycle(a))
	})

	t.Run("self loop", func(t *testing.T) {
		a := &Node[int]{Value: 1}
		a.Next = a
		assert.True(t, HasCycle(a))
	})
}

func TestDeque(t *testing.T) {
	d := NewDeque[int]()
	if d.Len() != 0 {
		t.Errorf("expect empty deque, got len %v", d.Len())
	}
	if _, ok := d.PopFront(); ok {
		t.Error("pop front on empty deque must fail")
	}
	if _, ok := d.PopBack(); ok {
		t.Error("pop back on empty deque must fail")
	}

	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	if d.Len() != 3 {
		t.Errorf("expect len 3, got %v", d.Len())
	}
	assert.Equal(t, []int{1, 2, 3}, d.ValuesForward())
	assert.Equal(t, []int{3, 2, 1}, d.ValuesBackward())

	v, ok := d.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = d.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 2, d.Front().Value)
	assert.Equal(t, d.Front(), d.Back())
}

func TestDequeRemove(t *testing.T) {
	d := NewDeque[string]()
	a := d.PushBack("a")
	b := d.PushBack("b")
	d.PushBack("c")

	d.Remove(b)
	assert.Equal(t, []string{"a", "c"}, d.ValuesForward())

	// removing twice is a no-op
	d.Remove(b)
	assert.Equal(t, 2, d.Len())

	d.Remove(a)
	assert.Equal(t, []string{"c"}, d.ValuesForward())
}
