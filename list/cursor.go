package list

import "github.com/hupe1980/arenakit/arena"

// Cursor is a stateful, bidirectional traversal position within a List,
// with structural mutation at the current position.
//
// Besides the element positions there is a single ghost position joining
// the two ends of the list: before the first element and after the last
// element are the same place. MoveNext from the ghost lands on the first
// element, MovePrev from the ghost lands on the last.
//
// A cursor tracks its element by handle, so structural changes made through
// any other path (direct List calls, another cursor, Clear) leave the
// cursor stale rather than corrupting the list: mutation through a stale
// cursor fails with arena.ErrStaleHandle and Reset recovers.
type Cursor[T any] struct {
	list *List[T]
	cur  arena.Handle // zero: the ghost position
}

// Cursor returns a new cursor at the ghost position.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l}
}

// Reset moves the cursor back to the ghost position.
func (c *Cursor[T]) Reset() {
	c.cur = arena.Handle{}
}

// MoveToFront places the cursor on the first element. Returns false on an
// empty list, leaving the cursor at the ghost.
func (c *Cursor[T]) MoveToFront() bool {
	c.Reset()
	return c.MoveNext()
}

// MoveToBack places the cursor on the last element. Returns false on an
// empty list, leaving the cursor at the ghost.
func (c *Cursor[T]) MoveToBack() bool {
	c.Reset()
	return c.MovePrev()
}

// MoveNext advances the cursor one position and reports whether it now sits
// on an element. Moving past the last element lands on the ghost. If the
// cursor's element was removed through another path, MoveNext reports false
// and leaves the cursor where it is; Reset recovers.
func (c *Cursor[T]) MoveNext() bool {
	if c.cur.IsZero() {
		if c.list.length == 0 {
			return false
		}
		c.cur = c.list.head
		return true
	}

	n, err := c.list.arena.Get(c.cur)
	if err != nil {
		return false
	}
	c.cur = n.next
	return !c.cur.IsZero()
}

// MovePrev retreats the cursor one position and reports whether it now sits
// on an element. Moving past the first element lands on the ghost. Same
// staleness contract as MoveNext.
func (c *Cursor[T]) MovePrev() bool {
	if c.cur.IsZero() {
		if c.list.length == 0 {
			return false
		}
		c.cur = c.list.tail
		return true
	}

	n, err := c.list.arena.Get(c.cur)
	if err != nil {
		return false
	}
	c.cur = n.prev
	return !c.cur.IsZero()
}

// Current returns a pointer to the element under the cursor. Returns
// ErrNoElement at the ghost position and arena.ErrStaleHandle if the
// element was removed through another path.
func (c *Cursor[T]) Current() (*T, error) {
	if c.cur.IsZero() {
		return nil, ErrNoElement
	}
	return c.list.Get(c.cur)
}

// Handle returns the handle of the element under the cursor, false at the
// ghost position.
func (c *Cursor[T]) Handle() (arena.Handle, bool) {
	return c.cur, !c.cur.IsZero()
}

// InsertAfter splices v in directly after the cursor position without
// moving the cursor. At the ghost position the new element becomes the
// first element. O(1).
func (c *Cursor[T]) InsertAfter(v T) (arena.Handle, error) {
	if c.cur.IsZero() {
		return c.list.PushFront(v)
	}
	return c.list.InsertAfter(c.cur, v)
}

// InsertBefore splices v in directly before the cursor position without
// moving the cursor. At the ghost position the new element becomes the
// last element. O(1).
func (c *Cursor[T]) InsertBefore(v T) (arena.Handle, error) {
	if c.cur.IsZero() {
		return c.list.PushBack(v)
	}
	return c.list.InsertBefore(c.cur, v)
}

// RemoveCurrent removes the element under the cursor and returns it. The
// cursor moves to the removed element's successor (the ghost when removing
// the last element), so a MoveNext/RemoveCurrent loop visits every element
// exactly once. Returns ErrNoElement at the ghost position and
// arena.ErrStaleHandle if the element was already removed through another
// path; in both cases the list is untouched.
func (c *Cursor[T]) RemoveCurrent() (T, error) {
	var zero T

	if c.cur.IsZero() {
		return zero, ErrNoElement
	}
	n, err := c.list.arena.Get(c.cur)
	if err != nil {
		return zero, err
	}

	succ := n.next
	v, err := c.list.Remove(c.cur)
	if err != nil {
		return zero, err
	}
	c.cur = succ

	return v, nil
}
