package queue

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrFull            = errors.New("queue is full")
	ErrEmpty           = errors.New("queue is empty")
)

// CircularQueue is a fixed-capacity FIFO ring buffer. The last slot wraps
// back to the first, so slots freed by Dequeue are reused.
type CircularQueue[T any] struct {
	items []T
	front int
	rear  int
	size  int
}

func NewCircular[T any](capacity int) (*CircularQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &CircularQueue[T]{
		items: make([]T, capacity),
		front: 0,
		rear:  -1,
	}, nil
}

// Enqueue adds v behind the rear slot, wrapping around the capacity.
func (q *CircularQueue[T]) Enqueue(v T) error {
	if q.Full() {
		return ErrFull
	}
	q.rear = (q.rear + 1) % len(q.items)
	q.items[q.rear] = v
	q.size++
	return nil
}

// Dequeue removes and returns the front value.
func (q *CircularQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmpty
	}
	v := q.items[q.front]
	q.items[q.front] = zero // release the slot
	q.front = (q.front + 1) % len(q.items)
	q.size--
	return v, nil
}

// Peek returns the front value without removing it.
func (q *CircularQueue[T]) Peek() (T, error) {
	if q.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[q.front], nil
}

func (q *CircularQueue[T]) Len() int {
	return q.size
}

func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

func (q *CircularQueue[T]) Empty() bool {
	return q.size == 0
}

func (q *CircularQueue[T]) Full() bool {
	return q.size == len(q.items)
}
