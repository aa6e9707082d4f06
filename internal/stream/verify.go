package stream

import (
	"fmt"
	"math"
)

// Expected returns the per-element values every partition must hold after
// initialization, the doubling pass, and iterations timed passes. All
// elements share one trajectory because every partition starts from the
// same constants and the kernels are elementwise.
func Expected(iterations int) (a, b, c Element) {
	a, b, c = 1.0, 2.0, 0.0
	a = 2 * a
	for i := 0; i < iterations; i++ {
		c = a
		b = Scalar * c
		c = a + b
		a = b + Scalar*c
	}
	return a, b, c
}

// Verify checks every element of every partition against the closed-form
// expectation, within the element type's relative epsilon, and reports the
// first mismatch. It must run after Measure and before any further kernel.
func (b *Bench) Verify(iterations int) error {
	wantA, wantB, wantC := Expected(iterations)
	for t := 0; t < b.pool.Workers(); t++ {
		pa, pb, pc := b.pool.Buffers(t)
		for i := range pa {
			if !withinEpsilon(pa[i], wantA) {
				return fmt.Errorf("worker %d: a[%d] = %v, want %v", t, i, pa[i], wantA)
			}
			if !withinEpsilon(pb[i], wantB) {
				return fmt.Errorf("worker %d: b[%d] = %v, want %v", t, i, pb[i], wantB)
			}
			if !withinEpsilon(pc[i], wantC) {
				return fmt.Errorf("worker %d: c[%d] = %v, want %v", t, i, pc[i], wantC)
			}
		}
	}
	return nil
}

func withinEpsilon(got, want Element) bool {
	if got == want {
		return true
	}
	return math.Abs(float64(got-want)) <= verifyEpsilon*math.Abs(float64(want))
}
