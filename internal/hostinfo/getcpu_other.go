//go:build !linux

package hostinfo

// ObservedCPU reports -1 on platforms without a getcpu query. The value is
// purely diagnostic, so there is nothing to fall back to.
func ObservedCPU() int {
	return -1
}
