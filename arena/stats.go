package arena

import "fmt"

// Stats is a point-in-time snapshot of arena activity.
//
//   - TotalAllocs / TotalFrees: cumulative allocation and free counts
//   - Reuses: allocations served from the free chain instead of growth
//   - Grows: backing-array reallocations
//   - LiveSlots / Capacity: current occupancy and slot capacity
//   - Epoch: bumped once per Reset
type Stats struct {
	TotalAllocs uint64
	TotalFrees  uint64
	Reuses      uint64
	Grows       uint64
	LiveSlots   int
	Capacity    int
	Epoch       uint32
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		TotalAllocs: a.allocs,
		TotalFrees:  a.frees,
		Reuses:      a.reuses,
		Grows:       a.grows,
		LiveSlots:   a.Len(),
		Capacity:    a.Cap(),
		Epoch:       a.epoch,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats{live: %d, cap: %d, allocs: %d, frees: %d, reuses: %d, grows: %d, epoch: %d}",
		s.LiveSlots, s.Capacity, s.TotalAllocs, s.TotalFrees, s.Reuses, s.Grows, s.Epoch,
	)
}
