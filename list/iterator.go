package list

import (
	"iter"

	"github.com/hupe1980/arenakit/arena"
)

// Values returns an iterator over the elements from front to back. The list
// must not be structurally modified during iteration; use a Cursor for
// mutation while traversing.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.head; !h.IsZero(); {
			n := l.node(h)
			if !yield(n.value) {
				return
			}
			h = n.next
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.tail; !h.IsZero(); {
			n := l.node(h)
			if !yield(n.value) {
				return
			}
			h = n.prev
		}
	}
}

// All returns an iterator over handle/element pairs from front to back.
func (l *List[T]) All() iter.Seq2[arena.Handle, T] {
	return func(yield func(arena.Handle, T) bool) {
		for h := l.head; !h.IsZero(); {
			n := l.node(h)
			if !yield(h, n.value) {
				return
			}
			h = n.next
		}
	}
}
