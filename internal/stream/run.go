package stream

import (
	"time"

	"github.com/qrlsm2/streambench/internal/clock"
)

// Timing is the per-kernel, per-iteration elapsed record of one run. Only
// the orchestrating goroutine writes it, strictly outside parallel regions;
// once Measure returns it is read-only.
type Timing struct {
	iterations int
	elapsed    [NumKernels][]time.Duration
}

func newTiming(iterations int) *Timing {
	t := &Timing{iterations: iterations}
	for k := range t.elapsed {
		t.elapsed[k] = make([]time.Duration, iterations)
	}
	return t
}

// Iterations returns the recorded iteration count.
func (t *Timing) Iterations() int {
	return t.iterations
}

// Elapsed returns the wall time of iteration iter of kernel k.
func (t *Timing) Elapsed(k Kernel, iter int) time.Duration {
	return t.elapsed[k][iter]
}

// Bench drives one measured run: it owns the pool and the timing table.
type Bench struct {
	cfg  Config
	pool *Pool
}

// New normalizes and validates cfg, then starts the pool, which allocates
// every partition before this returns. Close releases the pool.
func New(cfg Config) (*Bench, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Bench{
		cfg:  cfg,
		pool: NewPool(cfg.Workers, cfg.ArraySize()),
	}, nil
}

// Config returns the normalized configuration of this run.
func (b *Bench) Config() Config {
	return b.cfg
}

// Pool exposes the worker pool for diagnostics and tests.
func (b *Bench) Pool() *Pool {
	return b.pool
}

// Initialize fills every partition with the starting values.
func (b *Bench) Initialize() {
	b.pool.Initialize()
}

// EstimateKernelMicros wall-times one untimed A=2*A sweep and returns the
// result in microseconds, the figure the sizing advisory compares against
// the clock granularity. A is left doubled, which the verification
// recurrence accounts for.
func (b *Bench) EstimateKernelMicros() int {
	start := clock.Seconds()
	b.pool.DoublePass()
	return int(1e6 * (clock.Seconds() - start))
}

// Measure runs the configured number of iterations, each one executing the
// four kernels in fixed order. Every kernel invocation is timed from the
// fan-out to the barrier join; no kernel overlaps another.
func (b *Bench) Measure() *Timing {
	t := newTiming(b.cfg.Iterations)
	for iter := 0; iter < b.cfg.Iterations; iter++ {
		for k := Copy; k <= Triad; k++ {
			start := time.Now()
			b.pool.RunKernel(k)
			t.elapsed[k][iter] = time.Since(start)
		}
	}
	return t
}

// Close releases the pool and its OS threads.
func (b *Bench) Close() {
	b.pool.Close()
}
