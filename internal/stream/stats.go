package stream

// KernelStats is one kernel's reduced timing over a run: best, worst and
// mean wall time of the kept iterations, plus the bandwidth implied by the
// best one. Minimum time is the bandwidth basis because it is the reading
// least disturbed by transient OS noise.
type KernelStats struct {
	Kernel Kernel

	// Bytes is the traffic of one iteration across all workers.
	Bytes int64

	AvgSeconds float64
	MinSeconds float64
	MaxSeconds float64

	// BandwidthMiBps is Bytes divided by one MiB divided by MinSeconds.
	BandwidthMiBps float64
}

const bytesPerMiB = 1024 * 1024

// Reduce folds a timing table into per-kernel statistics. Iteration 0 is
// always discarded: first-touch page faults and cold caches make it
// unrepresentative. The table must hold at least two iterations, which the
// configuration clamp guarantees.
func Reduce(t *Timing, cfg *Config) [NumKernels]KernelStats {
	var out [NumKernels]KernelStats
	for k := Copy; k <= Triad; k++ {
		first := t.Elapsed(k, 1).Seconds()
		min, max, sum := first, first, first
		for iter := 2; iter < t.Iterations(); iter++ {
			s := t.Elapsed(k, iter).Seconds()
			sum += s
			if s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}

		bytes := cfg.BytesMoved(k)
		out[k] = KernelStats{
			Kernel:         k,
			Bytes:          bytes,
			AvgSeconds:     sum / float64(t.Iterations()-1),
			MinSeconds:     min,
			MaxSeconds:     max,
			BandwidthMiBps: float64(bytes) / bytesPerMiB / min,
		}
	}
	return out
}
