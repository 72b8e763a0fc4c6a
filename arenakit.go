// Package arenakit provides collection types whose storage lives in one
// contiguous, privately owned slot arena per instance.
//
// The foundation is the generational arena in package arena: slots are
// addressed by stable positions, freed slots are recycled through a free
// chain threaded through the arena itself, and every external reference is
// a (position, generation) Handle that detects staleness after
// removal-and-reuse instead of silently aliasing.
//
// Collections built on top:
//
//   - list: doubly-linked list with O(1) handle-addressed insert/remove and
//     a mutating bidirectional Cursor
//   - lru: least-recently-used cache (hash table + list)
//   - nary: n-ary forest with arena-pooled nodes
//   - ring: fixed-capacity ring buffer
//
// Example:
//
//	l := list.New[int]()
//	h, _ := l.PushBack(42)
//	l.PushBack(43)
//
//	v, _ := l.Remove(h)   // v == 42
//	_, err := l.Remove(h) // errors.Is(err, arena.ErrStaleHandle)
//
// Each collection instance exclusively owns its arena. None of the types
// are safe for concurrent use; callers that share an instance across
// goroutines must serialize access externally, e.g. with a sync.Mutex
// around the instance. Merging two lists is an O(n) element-wise copy
// (List.Append); no O(1) merge exists because that would require arenas
// shared across instances.
package arenakit
