package arena

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
)

// slot is the unit of arena storage. An occupied slot holds an element; a
// free slot holds only its free-chain link. gen is bumped on every
// occupied -> free transition and never decreases.
type slot[T any] struct {
	value    T
	gen      uint32
	nextFree uint32
	free     bool
}

// Arena is a generational slot arena. It owns one contiguous backing array
// of slots, grows it geometrically, and recycles freed slots through an
// internal free chain. See the package documentation for the handle and
// staleness model.
//
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  freeList
	// live mirrors the set of occupied positions. It backs Len, All and the
	// integrity checks in tests; the per-slot free flag stays authoritative
	// for the hot validation path.
	live   *roaring.Bitmap
	epoch  uint32
	opts   options
	logger *slog.Logger

	allocs uint64
	reuses uint64
	frees  uint64
	grows  uint64
}

// New creates an empty Arena.
func New[T any](opts ...Option) *Arena[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Arena[T]{
		slots:  make([]slot[T], 0, o.capacity),
		free:   newFreeList(),
		live:   roaring.New(),
		opts:   o,
		logger: o.logger,
	}
}

// Alloc stores v in a slot and returns a Handle to it. It reuses the most
// recently freed slot if one exists, otherwise appends a new slot, growing
// the backing array geometrically when full. O(1) amortized.
//
// Alloc fails with ErrAllocationFailed when growth would exceed the
// configured slot ceiling.
func (a *Arena[T]) Alloc(v T) (Handle, error) {
	pos, reused := freePop(&a.free, a.slots)
	if !reused {
		if err := a.grow(); err != nil {
			return Handle{}, err
		}
		pos = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: 1, nextFree: nullPos})
	} else {
		a.reuses++
	}

	s := &a.slots[pos]
	s.value = v
	s.free = false

	a.live.Add(pos)
	a.allocs++

	return Handle{pos: pos, gen: a.handleGen(s.gen)}, nil
}

// Free releases the slot h refers to and returns the element it held. The
// slot's generation is bumped, so h (and any copy of it) is stale from this
// point on, and the position is pushed onto the free chain for reuse. O(1).
func (a *Arena[T]) Free(h Handle) (T, error) {
	var zero T

	s, err := a.resolve(h)
	if err != nil {
		return zero, err
	}

	v := s.value
	s.value = zero
	s.gen++
	s.free = true
	freePush(&a.free, a.slots, h.pos)

	a.live.Remove(h.pos)
	a.frees++

	return v, nil
}

// Get returns a pointer to the element h refers to. The pointer stays valid
// until the next Alloc (growth may move the backing array) and must not be
// retained across structural operations; retain the Handle instead.
func (a *Arena[T]) Get(h Handle) (*T, error) {
	s, err := a.resolve(h)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// Valid reports whether h currently resolves to a live element.
func (a *Arena[T]) Valid(h Handle) bool {
	_, err := a.resolve(h)
	return err == nil
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int {
	return int(a.live.GetCardinality())
}

// Cap returns the current slot capacity.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

// Reset returns the arena to a fresh, fully free state in O(1). Instead of
// freeing slots one by one it bumps the arena epoch, which strands every
// outstanding Handle at once: any later use fails with ErrStaleHandle.
// Slot capacity is retained.
func (a *Arena[T]) Reset() {
	a.slots = a.slots[:0]
	a.free.reset()
	a.live.Clear()
	a.epoch++

	a.logger.Debug("arena reset", "epoch", a.epoch, "capacity", cap(a.slots))
}

// All returns an unordered iterator over every live slot. The arena must
// not be structurally modified during iteration.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		it := a.live.Iterator()
		for it.HasNext() {
			pos := it.Next()
			s := &a.slots[pos]
			if !yield(Handle{pos: pos, gen: a.handleGen(s.gen)}, &s.value) {
				return
			}
		}
	}
}

func (a *Arena[T]) handleGen(slotGen uint32) uint64 {
	return uint64(a.epoch)<<32 | uint64(slotGen)
}

// resolve validates h and returns the slot it refers to.
func (a *Arena[T]) resolve(h Handle) (*slot[T], error) {
	if h.gen == 0 {
		// Zero or externally constructed handle; never issued by an arena.
		return nil, ErrInvalidHandle
	}
	if uint32(h.gen>>32) != a.epoch {
		return nil, ErrStaleHandle
	}
	if h.pos >= uint32(len(a.slots)) {
		return nil, ErrInvalidHandle
	}
	s := &a.slots[h.pos]
	if s.free || s.gen != uint32(h.gen) {
		return nil, ErrStaleHandle
	}
	return s, nil
}

// grow ensures room for one more appended slot. Existing slots keep their
// position, content and generation, which is what lets Handles survive
// growth.
func (a *Arena[T]) grow() error {
	if a.opts.maxSlots > 0 && len(a.slots) >= a.opts.maxSlots {
		return fmt.Errorf("%w: slot ceiling %d reached", ErrAllocationFailed, a.opts.maxSlots)
	}
	if len(a.slots) < cap(a.slots) {
		return nil
	}

	newCap := cap(a.slots)
	if newCap == 0 {
		newCap = a.opts.capacity
	} else {
		newCap = int(float64(newCap) * a.opts.growthFactor)
	}
	if newCap <= cap(a.slots) {
		newCap = cap(a.slots) + 1
	}
	if a.opts.maxSlots > 0 && newCap > a.opts.maxSlots {
		newCap = a.opts.maxSlots
	}

	next := make([]slot[T], len(a.slots), newCap)
	copy(next, a.slots)
	a.slots = next
	a.grows++

	a.logger.Debug("arena grow", "capacity", newCap, "slots", len(a.slots))

	return nil
}
