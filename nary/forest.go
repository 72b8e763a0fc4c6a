// Package nary implements an n-ary forest whose nodes live in a
// generational slot arena. Nodes are addressed by arena handles, so a
// handle held past a node's removal fails with arena.ErrStaleHandle instead
// of silently pointing at a reused node. Freed nodes are recycled through
// the arena's free chain.
package nary

import (
	"errors"

	"github.com/hupe1980/arenakit/arena"
)

// ErrHasParent is returned by AddChild when the child is already attached.
var ErrHasParent = errors.New("nary: node already has a parent")

type node[T any] struct {
	value    T
	parent   arena.Handle
	children []arena.Handle
}

// Forest is a collection of n-ary trees sharing one arena. The zero value
// is not usable; call New. Forest is not safe for concurrent use.
type Forest[T any] struct {
	arena *arena.Arena[node[T]]
	roots []arena.Handle
}

// New creates an empty Forest. Options are forwarded to the underlying
// arena.
func New[T any](opts ...arena.Option) *Forest[T] {
	return &Forest[T]{arena: arena.New[node[T]](opts...)}
}

// Len returns the number of live nodes across all trees.
func (f *Forest[T]) Len() int {
	return f.arena.Len()
}

// Roots returns the root handles in insertion order.
func (f *Forest[T]) Roots() []arena.Handle {
	out := make([]arena.Handle, len(f.roots))
	copy(out, f.roots)
	return out
}

// Alloc creates a detached node holding v and returns its handle. Attach it
// with AddRoot or AddChild.
func (f *Forest[T]) Alloc(v T) (arena.Handle, error) {
	return f.arena.Alloc(node[T]{value: v})
}

// AddRoot registers a detached node as the root of a new tree.
func (f *Forest[T]) AddRoot(h arena.Handle) error {
	n, err := f.arena.Get(h)
	if err != nil {
		return err
	}
	if !n.parent.IsZero() {
		return ErrHasParent
	}
	f.roots = append(f.roots, h)
	return nil
}

// AddChild attaches a detached node under parent.
func (f *Forest[T]) AddChild(parent, child arena.Handle) error {
	cn, err := f.arena.Get(child)
	if err != nil {
		return err
	}
	pn, err := f.arena.Get(parent)
	if err != nil {
		return err
	}
	if !cn.parent.IsZero() {
		return ErrHasParent
	}

	pn.children = append(pn.children, child)
	cn.parent = parent
	return nil
}

// Free removes a single node and returns its value. The node is unlinked
// from its parent (or the root list) and its children become detached
// orphan subtrees whose parent handles have gone stale. The freed slot goes
// back to the arena for reuse; the handle is stale afterwards.
func (f *Forest[T]) Free(h arena.Handle) (T, error) {
	var zero T

	n, err := f.arena.Get(h)
	if err != nil {
		return zero, err
	}

	if n.parent.IsZero() {
		f.removeRoot(h)
	} else if pn, err := f.arena.Get(n.parent); err == nil {
		pn.children = removeHandle(pn.children, h)
	}

	freed, _ := f.arena.Free(h)
	return freed.value, nil
}

// Value returns a pointer to the value stored at h.
func (f *Forest[T]) Value(h arena.Handle) (*T, error) {
	n, err := f.arena.Get(h)
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// Parent returns the parent handle of h; the zero handle for roots and
// detached nodes.
func (f *Forest[T]) Parent(h arena.Handle) (arena.Handle, error) {
	n, err := f.arena.Get(h)
	if err != nil {
		return arena.Handle{}, err
	}
	return n.parent, nil
}

// Children returns the live child handles of h in attach order. Children
// freed out from under a parent are skipped.
func (f *Forest[T]) Children(h arena.Handle) ([]arena.Handle, error) {
	n, err := f.arena.Get(h)
	if err != nil {
		return nil, err
	}
	out := make([]arena.Handle, 0, len(n.children))
	for _, ch := range n.children {
		if f.arena.Valid(ch) {
			out = append(out, ch)
		}
	}
	return out, nil
}

// Search walks the subtree under root depth-first and returns the first
// node satisfying pred.
func (f *Forest[T]) Search(root arena.Handle, pred func(v T) bool) (arena.Handle, bool) {
	n, err := f.arena.Get(root)
	if err != nil {
		return arena.Handle{}, false
	}
	if pred(n.value) {
		return root, true
	}
	for _, ch := range n.children {
		if found, ok := f.Search(ch, pred); ok {
			return found, true
		}
	}
	return arena.Handle{}, false
}

// SearchAll walks every tree in the forest depth-first and collects handles
// of nodes satisfying pred, stopping once max results are found. A max at
// or below zero means no limit.
func (f *Forest[T]) SearchAll(pred func(v T) bool, max int) []arena.Handle {
	var results []arena.Handle
	for _, root := range f.roots {
		f.collect(root, pred, max, &results)
	}
	return results
}

// Clear drops every tree in O(1) by resetting the arena epoch; all
// previously issued handles go stale.
func (f *Forest[T]) Clear() {
	f.arena.Reset()
	f.roots = f.roots[:0]
}

// Stats returns the statistics of the underlying arena.
func (f *Forest[T]) Stats() arena.Stats {
	return f.arena.Stats()
}

func (f *Forest[T]) collect(h arena.Handle, pred func(v T) bool, max int, results *[]arena.Handle) {
	if max > 0 && len(*results) >= max {
		return
	}
	n, err := f.arena.Get(h)
	if err != nil {
		return
	}
	if pred(n.value) {
		*results = append(*results, h)
	}
	for _, ch := range n.children {
		f.collect(ch, pred, max, results)
	}
}

func (f *Forest[T]) removeRoot(h arena.Handle) {
	f.roots = removeHandle(f.roots, h)
}

func removeHandle(hs []arena.Handle, h arena.Handle) []arena.Handle {
	for i, cand := range hs {
		if cand == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
