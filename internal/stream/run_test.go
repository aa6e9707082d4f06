package stream

import "testing"

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{TotalElements: -1}); err == nil {
		t.Fatalf("expected error for negative element count, got nil")
	}

	if _, err := New(Config{TotalElements: 2, Workers: 4}); err == nil {
		t.Fatalf("expected error for empty partitions, got nil")
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	b, err := New(Config{TotalElements: 4096, Iterations: 1, Workers: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()

	cfg := b.Config()
	if cfg.Iterations != DefaultIterations {
		t.Fatalf("expected iteration clamp to %d, got %d", DefaultIterations, cfg.Iterations)
	}
	if cfg.ArraySize() != 2048 {
		t.Fatalf("expected array size 2048, got %d", cfg.ArraySize())
	}
	if b.Pool().Workers() != 2 {
		t.Fatalf("expected 2 workers, got %d", b.Pool().Workers())
	}
}

func TestMeasureRecordsEveryIteration(t *testing.T) {
	b, err := New(Config{TotalElements: 4096, Iterations: 10, Workers: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()
	b.Initialize()

	timing := b.Measure()
	if timing.Iterations() != 10 {
		t.Fatalf("expected 10 iterations, got %d", timing.Iterations())
	}
	for k := Copy; k <= Triad; k++ {
		for iter := 0; iter < timing.Iterations(); iter++ {
			if timing.Elapsed(k, iter) < 0 {
				t.Fatalf("%s iteration %d: negative elapsed %v", k, iter, timing.Elapsed(k, iter))
			}
		}
	}
}

func TestEstimateKernelMicrosNonNegative(t *testing.T) {
	b, err := New(Config{TotalElements: 1024, Iterations: 2, Workers: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()
	b.Initialize()

	if micros := b.EstimateKernelMicros(); micros < 0 {
		t.Fatalf("expected non-negative estimate, got %d", micros)
	}

	// The estimate pass doubles A and leaves B and C alone.
	checkAll(t, b.Pool(), "after estimate", 2, 2, 0)
}
