package arena

import "log/slog"

const (
	// DefaultCapacity is the initial capacity hint used when none is given.
	DefaultCapacity = 8
	// DefaultGrowthFactor is the geometric growth factor used when the
	// arena runs out of free slots.
	DefaultGrowthFactor = 2.0
)

type options struct {
	capacity     int
	growthFactor float64
	maxSlots     int
	logger       *slog.Logger
}

// Option configures an Arena at construction time.
type Option func(*options)

// WithCapacity sets the initial slot capacity. Values below 1 fall back to
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithGrowthFactor sets the geometric growth factor applied when the arena
// is full. Values at or below 1 fall back to DefaultGrowthFactor.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		if f > 1 {
			o.growthFactor = f
		}
	}
}

// WithMaxSlots caps the number of slots the arena may ever hold. Allocations
// beyond the cap fail with ErrAllocationFailed. Zero (the default) means
// unlimited.
func WithMaxSlots(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSlots = n
		}
	}
}

// WithLogger sets the logger used for growth and reset events. If nil or
// unset, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		capacity:     DefaultCapacity,
		growthFactor: DefaultGrowthFactor,
		logger:       slog.New(slog.DiscardHandler),
	}
}
