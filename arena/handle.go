package arena

import "fmt"

// nullPos marks the absence of a position, e.g. the end of the free chain.
const nullPos = ^uint32(0)

// Handle is an opaque reference to a live arena slot. It identifies a
// logical element by (position, generation) rather than by memory address,
// so it stays valid across arena growth and is detected as stale after the
// element is removed.
//
// Handles are copyable and comparable. The zero Handle is never issued by
// an arena and never resolves. A Handle carries no reference to the arena
// that issued it; resolving it against a different arena instance is a
// caller error and is not detected.
type Handle struct {
	pos uint32
	// gen packs the arena epoch (high 32 bits) with the per-slot generation
	// (low 32 bits). A Reset bumps the epoch and strands every handle from
	// the previous epoch.
	gen uint64
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) String() string {
	return fmt.Sprintf("Handle(pos=%d gen=%d epoch=%d)", h.pos, uint32(h.gen), uint32(h.gen>>32))
}
