package stream

import (
	"errors"
	"fmt"
	"runtime"
)

// Reference defaults: twenty million elements split across the runtime's
// worker pool, ten timed iterations.
const (
	DefaultTotalElements int64 = 20000000
	DefaultIterations          = 10
)

// ErrInvalidElements reports a non-positive problem size.
var ErrInvalidElements = errors.New("total element count must be at least 1")

// Config fixes one benchmark run.
type Config struct {
	// TotalElements is the logical problem size before partitioning.
	// Zero means DefaultTotalElements.
	TotalElements int64

	// Iterations is the number of timed passes over all four kernels.
	// Configured values of one or less fall back to DefaultIterations;
	// the reducer needs at least one iteration beyond the discarded
	// warm-up.
	Iterations int

	// Workers is the pool size. Zero or less means the runtime's current
	// GOMAXPROCS value, which is how the thread count is controlled from
	// the environment; the benchmark never sets it.
	Workers int

	// Verify enables the closed-form result check after the timed loop.
	Verify bool

	// Label is a free-form tag carried into exported results.
	Label string
}

// Normalize fills defaulted fields in place.
func (c *Config) Normalize() {
	if c.TotalElements == 0 {
		c.TotalElements = DefaultTotalElements
	}
	if c.Iterations <= 1 {
		c.Iterations = DefaultIterations
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate reports whether the configuration can run at all. It expects
// Normalize to have been applied.
func (c *Config) Validate() error {
	if c.TotalElements < 1 {
		return ErrInvalidElements
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, have %d", c.Workers)
	}
	if c.ArraySize() < 1 {
		return fmt.Errorf("%d elements across %d workers leaves empty partitions",
			c.TotalElements, c.Workers)
	}
	return nil
}

// ArraySize is the per-worker buffer length: the floor of
// TotalElements/Workers. Any remainder is never allocated or touched,
// matching the reference partitioning.
func (c *Config) ArraySize() int64 {
	return c.TotalElements / int64(c.Workers)
}

// TotalBytes is the footprint of all three buffers across the whole pool.
func (c *Config) TotalBytes() int64 {
	return 3 * ElementBytes * c.ArraySize() * int64(c.Workers)
}

// BytesMoved is one kernel's per-iteration traffic across the whole pool:
// reads plus writes, ignoring any write-allocate traffic the cache may add.
func (c *Config) BytesMoved(k Kernel) int64 {
	return k.Words() * ElementBytes * c.ArraySize() * int64(c.Workers)
}
