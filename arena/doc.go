// Package arena provides a generational slot arena: contiguous, growable
// storage of fixed-size slots addressed by stable positions instead of
// memory addresses.
//
// Every allocation returns a Handle, an opaque (position, generation) pair.
// Freeing a slot bumps its generation, so a Handle held past the element's
// removal stops resolving and surfaces ErrStaleHandle instead of silently
// aliasing whatever value reused the slot. Growth reallocates the backing
// storage but preserves every slot's position, content and generation, so
// outstanding Handles survive growth.
//
// Freed positions are threaded through the free slots themselves as a
// singly-linked chain, so reuse is O(1) with no side allocation. Reset
// clears the whole arena in O(1) by bumping an epoch that invalidates every
// outstanding Handle at once.
//
// An Arena is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
package arena
