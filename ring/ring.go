// Package ring implements a fixed-capacity ring buffer. Unlike the
// arena-backed collections it never grows: enqueueing into a full buffer
// fails with ErrFull, which makes it suitable as a bounded queue.
package ring

import (
	"errors"
	"iter"
)

var (
	// ErrFull is returned by Enqueue on a full buffer.
	ErrFull = errors.New("ring: buffer full")
	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("ring: buffer empty")
)

// Buffer is a fixed-capacity FIFO ring buffer with an additional PopBack,
// making it usable as a bounded deque consumer. The zero value is an empty
// buffer of capacity zero. Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	buf    []T
	front  int
	length int
}

// New creates an empty Buffer with the given capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{buf: make([]T, capacity)}
}

// From creates a full Buffer whose capacity and contents are taken from
// items. The slice is owned by the buffer afterwards.
func From[T any](items []T) *Buffer[T] {
	return &Buffer[T]{buf: items, length: len(items)}
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return b.length == 0 }

// Full reports whether the buffer is at capacity.
func (b *Buffer[T]) Full() bool { return b.length >= len(b.buf) }

// Enqueue appends v at the rear. O(1).
func (b *Buffer[T]) Enqueue(v T) error {
	if b.Full() {
		return ErrFull
	}
	b.buf[(b.front+b.length)%len(b.buf)] = v
	b.length++
	return nil
}

// Dequeue removes and returns the front element. O(1).
func (b *Buffer[T]) Dequeue() (T, error) {
	var zero T
	if b.Empty() {
		return zero, ErrEmpty
	}
	v := b.buf[b.front]
	b.buf[b.front] = zero
	b.front = (b.front + 1) % len(b.buf)
	b.length--
	return v, nil
}

// PopBack removes and returns the rear element. O(1).
func (b *Buffer[T]) PopBack() (T, error) {
	var zero T
	if b.Empty() {
		return zero, ErrEmpty
	}
	idx := (b.front + b.length - 1) % len(b.buf)
	v := b.buf[idx]
	b.buf[idx] = zero
	b.length--
	return v, nil
}

// Front returns a pointer to the front element without removing it.
func (b *Buffer[T]) Front() (*T, error) {
	if b.Empty() {
		return nil, ErrEmpty
	}
	return &b.buf[b.front], nil
}

// PeekNext returns a pointer to the element directly behind the front, or
// ErrEmpty when the buffer holds fewer than two elements.
func (b *Buffer[T]) PeekNext() (*T, error) {
	if b.length <= 1 {
		return nil, ErrEmpty
	}
	return &b.buf[(b.front+1)%len(b.buf)], nil
}

// Values returns an iterator over the elements from front to rear. The
// buffer must not be modified during iteration.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(b.buf[(b.front+i)%len(b.buf)]) {
				return
			}
		}
	}
}
