package stream

import "testing"

func TestPoolPartitioning(t *testing.T) {
	p := NewPool(4, 128)
	defer p.Close()

	if p.Workers() != 4 {
		t.Fatalf("expected 4 workers, got %d", p.Workers())
	}
	if p.ArraySize() != 128 {
		t.Fatalf("expected array size 128, got %d", p.ArraySize())
	}
	for id := 0; id < p.Workers(); id++ {
		a, b, c := p.Buffers(id)
		if len(a) != 128 || len(b) != 128 || len(c) != 128 {
			t.Fatalf("worker %d: expected three buffers of 128 elements, got %d/%d/%d",
				id, len(a), len(b), len(c))
		}
	}
}

func TestPoolInitializeValues(t *testing.T) {
	p := NewPool(3, 64)
	defer p.Close()
	p.Initialize()

	for id := 0; id < p.Workers(); id++ {
		a, b, c := p.Buffers(id)
		for i := range a {
			if a[i] != 1.0 || b[i] != 2.0 || c[i] != 0.0 {
				t.Fatalf("worker %d index %d: got a=%v b=%v c=%v, want 1/2/0",
					id, i, a[i], b[i], c[i])
			}
		}
	}
}

func TestPoolObservedCPUs(t *testing.T) {
	p := NewPool(2, 8)
	defer p.Close()

	cpus := p.CPUs()
	if len(cpus) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cpus))
	}
	for id, cpu := range cpus {
		if cpu < -1 {
			t.Fatalf("worker %d: observed CPU %d below the unknown sentinel", id, cpu)
		}
	}
}
