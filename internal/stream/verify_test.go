package stream

import "testing"

func TestExpectedRecurrence(t *testing.T) {
	// No timed iterations: only the doubling pass has run.
	a, b, c := Expected(0)
	if a != 2 || b != 2 || c != 0 {
		t.Fatalf("expected (2, 2, 0) before any iteration, got (%v, %v, %v)", a, b, c)
	}

	// One iteration from A=2, B=2, C=0: Copy C=2, Scale B=6, Add C=8,
	// Triad A=6+3*8=30.
	a, b, c = Expected(1)
	if a != 30 || b != 6 || c != 8 {
		t.Fatalf("expected (30, 6, 8) after one iteration, got (%v, %v, %v)", a, b, c)
	}
}

func TestVerifyPassesAfterFullRun(t *testing.T) {
	bench, err := New(Config{TotalElements: 2048, Iterations: 3, Workers: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer bench.Close()

	bench.Initialize()
	bench.EstimateKernelMicros()
	bench.Measure()

	if err := bench.Verify(bench.Config().Iterations); err != nil {
		t.Fatalf("expected clean verification, got %v", err)
	}
}

func TestVerifyCatchesCorruption(t *testing.T) {
	bench, err := New(Config{TotalElements: 256, Iterations: 2, Workers: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer bench.Close()

	bench.Initialize()
	bench.EstimateKernelMicros()
	bench.Measure()

	a, _, _ := bench.Pool().Buffers(1)
	a[17] += 1

	if err := bench.Verify(bench.Config().Iterations); err == nil {
		t.Fatalf("expected the corrupted element to be reported, got nil")
	}
}

func TestVerifyRequiresEstimatePass(t *testing.T) {
	// Skipping the doubling pass leaves A at half the expected value, which
	// the check must flag.
	bench, err := New(Config{TotalElements: 128, Iterations: 2, Workers: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer bench.Close()

	bench.Initialize()
	bench.Measure()

	if err := bench.Verify(bench.Config().Iterations); err == nil {
		t.Fatalf("expected verification to fail without the doubling pass, got nil")
	}
}
