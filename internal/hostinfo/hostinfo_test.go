package hostinfo

import (
	"runtime"
	"testing"
)

func TestCollectBasics(t *testing.T) {
	info, err := Collect()
	if err != nil {
		t.Logf("partial host facts: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Fatalf("expected OS %q, got %q", runtime.GOOS, info.OS)
	}
	if info.Arch != runtime.GOARCH {
		t.Fatalf("expected arch %q, got %q", runtime.GOARCH, info.Arch)
	}
	if info.GoVersion != runtime.Version() {
		t.Fatalf("expected go version %q, got %q", runtime.Version(), info.GoVersion)
	}

	if err == nil {
		if info.LogicalCores < 1 {
			t.Fatalf("expected at least one logical core, got %d", info.LogicalCores)
		}
		if info.TotalMemory == 0 {
			t.Fatalf("expected nonzero total memory")
		}
		if info.AvailableMemory > info.TotalMemory {
			t.Fatalf("available memory %d exceeds total %d", info.AvailableMemory, info.TotalMemory)
		}
	}
}

func TestObservedCPUSentinel(t *testing.T) {
	if cpu := ObservedCPU(); cpu < -1 {
		t.Fatalf("observed CPU %d below the unknown sentinel", cpu)
	}
}
