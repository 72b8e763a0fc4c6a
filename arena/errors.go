package arena

import "errors"

var (
	// ErrInvalidHandle is returned when a handle's position is outside the
	// arena's bounds or the handle was never issued by this arena.
	ErrInvalidHandle = errors.New("arena: invalid handle")

	// ErrStaleHandle is returned when a handle's position is in bounds but
	// its generation no longer matches: the element it referenced has been
	// removed (and the slot possibly reused), or the arena has been reset.
	ErrStaleHandle = errors.New("arena: stale handle")

	// ErrAllocationFailed is returned when an allocation cannot be satisfied
	// because growth would exceed the configured slot ceiling.
	ErrAllocationFailed = errors.New("arena: allocation failed")
)
