//go:build linux

package hostinfo

import "golang.org/x/sys/unix"

// ObservedCPU reports the logical CPU the calling thread is running on, or
// -1 when the kernel will not say. The caller should hold its OS thread
// locked for the answer to stay meaningful; either way the value is purely
// diagnostic.
func ObservedCPU() int {
	cpu, _, err := unix.Getcpu()
	if err != nil {
		return -1
	}
	return cpu
}
