package ring

import (
	"sync"
)

// Buffer is a fixed capacity FIFO. Pushing into a full buffer drops the
// oldest item.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	size  int
	count int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{
		items: make([]T, capacity),
		size:  capacity,
	}
}

func (rb *Buffer[T]) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// at maps the logical index i (0 is the oldest item) into items.
func (rb *Buffer[T]) at(i int) int {
	return (rb.head + i) % rb.size
}

func (rb *Buffer[T]) Push(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == rb.size {
		rb.items[rb.head] = item
		rb.head = (rb.head + 1) % rb.size
		return
	}
	rb.items[rb.at(rb.count)] = item
	rb.count++
}

// Last returns the newest item.
func (rb *Buffer[T]) Last() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == 0 {
		var zero T
		return zero, false
	}
	return rb.items[rb.at(rb.count-1)], true
}

func (rb *Buffer[T]) First() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == 0 {
		var zero T
		return zero, false
	}
	return rb.items[rb.head], true
}

// SetLast replaces the newest item, or pushes item into an empty buffer.
func (rb *Buffer[T]) SetLast(item T) {
	rb.mu.Lock()
	if rb.count == 0 {
		rb.mu.Unlock()
		rb.Push(item)
		return
	}
	defer rb.mu.Unlock()
	rb.items[rb.at(rb.count-1)] = item
}

// Items copies every item, oldest first.
func (rb *Buffer[T]) Items() []T {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	out := make([]T, 0, rb.count)
	for i := 0; i < rb.count; i++ {
		out = append(out, rb.items[rb.at(i)])
	}
	return out
}
