// Package list implements a doubly-linked list whose nodes live in a
// generational slot arena instead of individually allocated heap objects.
//
// Every insert returns an arena.Handle addressing the new element in O(1)
// for later InsertBefore/InsertAfter/Remove/Get calls. Handles stay valid
// across arena growth and are detected as stale once the element has been
// removed, so the use-after-free bug class of pointer-based lists shows up
// here as a recoverable arena.ErrStaleHandle instead of silent aliasing.
//
// Clear releases all elements in O(1) by resetting the underlying arena
// epoch; every previously issued handle (and every cursor) goes stale as a
// result.
//
// A List is not safe for concurrent use, and at most one Cursor should
// mutate a list at a time. Callers that share a list across goroutines must
// serialize access externally; unsynchronized structural mutation through
// two paths is detected at best as a stale-handle failure.
package list
