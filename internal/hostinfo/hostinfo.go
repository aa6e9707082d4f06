// Package hostinfo gathers the machine facts shown in the banner and
// attached to exported results: core counts, CPU model, memory sizes, and
// the best-effort observed-CPU diagnostic for OS-thread-locked workers.
package hostinfo

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info is a snapshot of the facts that matter to a bandwidth run.
type Info struct {
	Hostname        string
	OS              string
	Arch            string
	CPUModel        string
	LogicalCores    int
	PhysicalCores   int
	TotalMemory     uint64
	AvailableMemory uint64
	GoVersion       string
}

// Collect gathers host facts. Fields a platform cannot answer stay at their
// zero values; the returned error reports the first failure, for logging,
// but a partially filled Info is always returned and always usable.
func Collect() (Info, error) {
	info := Info{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
	var firstErr error

	if name, err := os.Hostname(); err == nil {
		info.Hostname = name
	} else {
		firstErr = err
	}

	if n, err := cpu.Counts(true); err == nil {
		info.LogicalCores = n
	} else if firstErr == nil {
		firstErr = err
	}

	if n, err := cpu.Counts(false); err == nil {
		info.PhysicalCores = n
	} else if firstErr == nil {
		firstErr = err
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
	} else if err != nil && firstErr == nil {
		firstErr = err
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
		info.AvailableMemory = vm.Available
	} else if firstErr == nil {
		firstErr = err
	}

	return info, firstErr
}
