package list

// Element is an element of a doubly linked deque.
type Element[T any] struct {
	// Next and previous pointers in the doubly-linked list of elements.
	// Internally a deque is implemented as a ring, such that &d.root is
	// both the next element of the last deque element (d.Back()) and the
	// previous element of the first deque element (d.Front()).
	next, prev *Element[T]
	// The value stored with this element.
	Value T
}

// Deque is a doubly linked list with O(1) push/pop at both ends.
type Deque[T any] struct {
	root Element[T]
	size int
}

func NewDeque[T any]() *Deque[T] {
	return new(Deque[T]).init()
}

// init initializes or clears deque d.
func (d *Deque[T]) init() *Deque[T] {
	d.root.next = &d.root
	d.root.prev = &d.root
	d.size = 0
	return d
}

// link links e after at, increments size.
func (d *Deque[T]) link(e, at *Element[T]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	d.size++
}

// unlink unlinks e from its deque, decrements size.
func (d *Deque[T]) unlink(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil // avoid memory leaks
	e.prev = nil // avoid memory leaks
	d.size--
}

func (d *Deque[T]) Len() int {
	return d.size
}

// Remove removes e from its deque, decrements size.
func (d *Deque[T]) Remove(e *Element[T]) {
	if e.next == nil && e.prev == nil {
		return
	}
	if d.size > 0 {
		d.unlink(e)
	}
}

// Front returns the first element of deque d or nil if the deque is empty.
func (d *Deque[T]) Front() *Element[T] {
	if d.size == 0 {
		return nil
	}
	return d.root.next
}

// Back returns the last element of deque d or nil if the deque is empty.
func (d *Deque[T]) Back() *Element[T] {
	if d.size == 0 {
		return nil
	}
	return d.root.prev
}

// Next returns the element after e or nil if e is the last one.
func (d *Deque[T]) Next(e *Element[T]) *Element[T] {
	if e.next == &d.root {
		return nil
	}
	return e.next
}

// Prev returns the element before e or nil if e is the first one.
func (d *Deque[T]) Prev(e *Element[T]) *Element[T] {
	if e.prev == &d.root {
		return nil
	}
	return e.prev
}

// PopFront removes the element at the front of deque d and returns its
// value. The second return is false if the deque was empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	e := d.root.next
	d.unlink(e)
	return e.Value, true
}

// PopBack removes the element at the back of deque d and returns its
// value. The second return is false if the deque was empty.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	e := d.root.prev
	d.unlink(e)
	return e.Value, true
}

// PushFront inserts a new element with value v at the front of deque d and returns it.
func (d *Deque[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v}
	d.link(e, &d.root)
	return e
}

// PushBack inserts a new element with value v at the back of deque d and returns it.
func (d *Deque[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v}
	d.link(e, d.root.prev)
	return e
}

// ValuesForward returns values from front to back.
func (d *Deque[T]) ValuesForward() []T {
	out := make([]T, 0, d.size)
	for e := d.Front(); e != nil; e = d.Next(e) {
		out = append(out, e.Value)
	}
	return out
}

// ValuesBackward returns values from back to front.
func (d *Deque[T]) ValuesBackward() []T {
	out := make([]T, 0, d.size)
	for e := d.Back(); e != nil; e = d.Prev(e) {
		out = append(out, e.Value)
	}
	return out
}
