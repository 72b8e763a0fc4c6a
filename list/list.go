package list

import (
	"errors"

	"github.com/hupe1980/arenakit/arena"
)

var (
	// ErrEmptyList is returned by operations that need at least one element.
	ErrEmptyList = errors.New("list: empty list")

	// ErrNoElement is returned by cursor operations that need the cursor to
	// be positioned on an element.
	ErrNoElement = errors.New("list: cursor not on an element")
)

// node is the arena slot payload: the element plus its neighbor links.
// A zero Handle means no neighbor.
type node[T any] struct {
	value T
	prev  arena.Handle
	next  arena.Handle
}

// List is an arena-backed doubly-linked list. The zero value is not usable;
// call New.
type List[T any] struct {
	arena  *arena.Arena[node[T]]
	head   arena.Handle
	tail   arena.Handle
	length int
}

// New creates an empty List. Options are forwarded to the underlying arena.
func New[T any](opts ...arena.Option) *List[T] {
	return &List[T]{arena: arena.New[node[T]](opts...)}
}

// node returns the node behind a handle the list itself links to. Such
// handles are valid by the list invariants.
func (l *List[T]) node(h arena.Handle) *node[T] {
	n, _ := l.arena.Get(h)
	return n
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.length
}

// PushFront inserts v at the front and returns its handle. O(1).
func (l *List[T]) PushFront(v T) (arena.Handle, error) {
	h, err := l.arena.Alloc(node[T]{value: v})
	if err != nil {
		return arena.Handle{}, err
	}

	if l.length == 0 {
		l.head, l.tail = h, h
	} else {
		l.node(h).next = l.head
		l.node(l.head).prev = h
		l.head = h
	}
	l.length++

	return h, nil
}

// PushBack inserts v at the back and returns its handle. O(1).
func (l *List[T]) PushBack(v T) (arena.Handle, error) {
	h, err := l.arena.Alloc(node[T]{value: v})
	if err != nil {
		return arena.Handle{}, err
	}

	if l.length == 0 {
		l.head, l.tail = h, h
	} else {
		l.node(h).prev = l.tail
		l.node(l.tail).next = h
		l.tail = h
	}
	l.length++

	return h, nil
}

// InsertAfter splices v in directly after the element at, and returns the
// new element's handle. Fails with arena.ErrInvalidHandle or
// arena.ErrStaleHandle without touching the list if at does not resolve.
// O(1).
func (l *List[T]) InsertAfter(at arena.Handle, v T) (arena.Handle, error) {
	// Validate before allocating so a failed insert is a strict no-op.
	if _, err := l.arena.Get(at); err != nil {
		return arena.Handle{}, err
	}
	if at == l.tail {
		return l.PushBack(v)
	}

	h, err := l.arena.Alloc(node[T]{value: v})
	if err != nil {
		return arena.Handle{}, err
	}

	succ := l.node(at).next
	n := l.node(h)
	n.prev = at
	n.next = succ
	l.node(at).next = h
	l.node(succ).prev = h
	l.length++

	return h, nil
}

// InsertBefore splices v in directly before the element at, and returns the
// new element's handle. Same failure contract as InsertAfter. O(1).
func (l *List[T]) InsertBefore(at arena.Handle, v T) (arena.Handle, error) {
	if _, err := l.arena.Get(at); err != nil {
		return arena.Handle{}, err
	}
	if at == l.head {
		return l.PushFront(v)
	}

	h, err := l.arena.Alloc(node[T]{value: v})
	if err != nil {
		return arena.Handle{}, err
	}

	pred := l.node(at).prev
	n := l.node(h)
	n.prev = pred
	n.next = at
	l.node(at).prev = h
	l.node(pred).next = h
	l.length++

	return h, nil
}

// Remove unlinks the element h refers to and returns it. The handle (and
// any copy of it) is stale afterwards; the freed slot goes back to the
// arena's free chain. Fails without touching the list if h does not
// resolve. O(1).
func (l *List[T]) Remove(h arena.Handle) (T, error) {
	var zero T

	n, err := l.arena.Get(h)
	if err != nil {
		return zero, err
	}

	prev, next := n.prev, n.next
	if prev.IsZero() {
		l.head = next
	} else {
		l.node(prev).next = next
	}
	if next.IsZero() {
		l.tail = prev
	} else {
		l.node(next).prev = prev
	}
	l.length--

	freed, _ := l.arena.Free(h)
	return freed.value, nil
}

// Get returns a pointer to the element h refers to. The pointer must not be
// retained across structural operations; retain the handle instead.
func (l *List[T]) Get(h arena.Handle) (*T, error) {
	n, err := l.arena.Get(h)
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// Front returns a pointer to the first element, or ErrEmptyList.
func (l *List[T]) Front() (*T, error) {
	if l.length == 0 {
		return nil, ErrEmptyList
	}
	return &l.node(l.head).value, nil
}

// Back returns a pointer to the last element, or ErrEmptyList.
func (l *List[T]) Back() (*T, error) {
	if l.length == 0 {
		return nil, ErrEmptyList
	}
	return &l.node(l.tail).value, nil
}

// FrontHandle returns the handle of the first element, false when empty.
func (l *List[T]) FrontHandle() (arena.Handle, bool) {
	return l.head, l.length > 0
}

// BackHandle returns the handle of the last element, false when empty.
func (l *List[T]) BackHandle() (arena.Handle, bool) {
	return l.tail, l.length > 0
}

// PopFront removes and returns the first element, or ErrEmptyList.
func (l *List[T]) PopFront() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.Remove(l.head)
}

// PopBack removes and returns the last element, or ErrEmptyList.
func (l *List[T]) PopBack() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.Remove(l.tail)
}

// Clear empties the list in O(1) by resetting the arena epoch rather than
// freeing slots one by one. Every handle issued before the Clear is stale
// afterwards, as is any cursor; this is the documented trade-off for O(1)
// bulk teardown. Slot capacity is retained.
func (l *List[T]) Clear() {
	l.arena.Reset()
	l.head = arena.Handle{}
	l.tail = arena.Handle{}
	l.length = 0
}

// Append moves every element of other onto the back of l, front to back.
// This is an O(n) element-wise copy through the two arenas; the lists keep
// exclusively owned storage, so no O(1) merge exists. other is left empty.
// Appending a list to itself is a no-op.
//
// On an allocation failure the elements moved so far stay in l and the
// remainder stays in other.
func (l *List[T]) Append(other *List[T]) error {
	if other == l {
		return nil
	}
	for other.length > 0 {
		v, err := other.PopFront()
		if err != nil {
			return err
		}
		if _, err := l.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the statistics of the underlying arena.
func (l *List[T]) Stats() arena.Stats {
	return l.arena.Stats()
}
