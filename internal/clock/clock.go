// Package clock is the monotonic time source behind the benchmark's timing
// loop, plus the probe that estimates how fine-grained that source is.
package clock

import "time"

// tickSamples is the number of distinct clock ticks the granularity probe
// collects before reducing them.
const tickSamples = 20

var epoch = time.Now()

// Seconds returns wall-clock seconds elapsed since an arbitrary
// process-local epoch. Readings are monotone non-decreasing and safe from
// any number of goroutines without synchronization: the epoch is fixed at
// startup and every call is a pure read of the runtime's monotonic clock.
func Seconds() float64 {
	return time.Since(epoch).Seconds()
}

// Granularity estimates the smallest observable difference between two
// clock readings, in whole microseconds. It spins until consecutive
// readings are at least one microsecond apart, collects tickSamples such
// tick boundaries, and returns the minimum successive difference with each
// delta clamped to zero before the reduction.
//
// A result of 0 means the clock resolves below one microsecond; callers
// substitute a floor of 1 when scaling advisory thresholds. The probe
// always terminates because the source is monotonic and increasing.
func Granularity() int {
	var ticks [tickSamples]float64

	for i := 0; i < tickSamples; i++ {
		t1 := Seconds()
		t2 := Seconds()
		for t2-t1 < 1e-6 {
			t2 = Seconds()
		}
		ticks[i] = t2
	}

	minDelta := 1000000
	for i := 1; i < tickSamples; i++ {
		delta := int(1e6 * (ticks[i] - ticks[i-1]))
		if delta < 0 {
			delta = 0
		}
		if delta < minDelta {
			minDelta = delta
		}
	}
	return minDelta
}
