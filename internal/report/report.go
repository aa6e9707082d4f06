// Package report renders the stdout banner and the result table. The text
// layout follows the classic STREAM report; only the numeric columns are
// meant for machines, everything else is for the person at the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/qrlsm2/streambench/internal/models"
)

const hline = "--------------------------------------------------------------------"

// Rule prints the horizontal separator between banner sections.
func Rule(w io.Writer) {
	fmt.Fprintln(w, hline)
}

// Intro prints the program header, the element width and the iteration plan.
func Intro(w io.Writer, elementBytes, iterations int) {
	Rule(w)
	fmt.Fprintln(w, "streambench: STREAM-style sustained memory bandwidth benchmark")
	Rule(w)
	fmt.Fprintf(w, "This system uses %d bytes per array element.\n", elementBytes)
	Rule(w)
	fmt.Fprintf(w, "Each kernel will be executed %d times.\n", iterations)
	fmt.Fprintln(w, "The *best* time for each kernel (excluding the first iteration)")
	fmt.Fprintln(w, "will be used to compute the reported bandwidth.")
	Rule(w)
}

// Host prints the machine facts gathered at startup.
func Host(w io.Writer, info models.HostInfo) {
	fmt.Fprintf(w, "Host: %s (%s/%s, %s)\n", info.Hostname, info.OS, info.Arch, info.GoVersion)
	if info.CPUModel != "" {
		fmt.Fprintf(w, "CPU: %s\n", info.CPUModel)
	}
	fmt.Fprintf(w, "System memory: %.1f GiB total\n", gib(float64(info.MemoryBytes)))
}

// Machine prints the CPU and thread counts.
func Machine(w io.Writer, ncpus, threads int) {
	fmt.Fprintf(w, "Total number of CPU: %d\n", ncpus)
	fmt.Fprintf(w, "Number of threads requested = %d\n", threads)
}

// Pinning prints the CPU each worker observed itself running on. A negative
// value means the query is unsupported or failed on this platform.
func Pinning(w io.Writer, cpus []int) {
	for id, cpu := range cpus {
		if cpu < 0 {
			fmt.Fprintf(w, "Thread ID %d pinned on CPU unknown\n", id)
			continue
		}
		fmt.Fprintf(w, "Thread ID %d pinned on CPU %d\n", id, cpu)
	}
}

// Memory prints the footprint of the three arrays per thread and in total.
func Memory(w io.Writer, arraySize int64, elementBytes, threads int) {
	per := float64(elementBytes) * float64(arraySize)
	total := 3 * per * float64(threads)
	fmt.Fprintf(w, "Memory per array (a,b,c) = %.1f MiB (%.1f GiB).\n", mib(per), gib(per))
	fmt.Fprintf(w, "Memory required per thread = %.1f MiB (%.1f GiB).\n", mib(3*per), gib(3*per))
	fmt.Fprintf(w, "Total memory required (%d threads) = %.1f MiB (%.1f GiB).\n",
		threads, mib(total), gib(total))
}

// Granularity prints the measured clock quantum advisory.
func Granularity(w io.Writer, quantum int) {
	if quantum >= 1 {
		fmt.Fprintf(w, "Your clock granularity/precision appears to be %d microseconds.\n", quantum)
		return
	}
	fmt.Fprintln(w, "Your clock granularity appears to be less than one microsecond.")
}

// Initializing announces the array fill pass.
func Initializing(w io.Writer) {
	fmt.Fprintln(w, "Initialize arrays...")
}

// Estimate prints the rough per-test duration advisory against the clock
// quantum floor.
func Estimate(w io.Writer, micros, quantum int) {
	fmt.Fprintf(w, "Each test below will take on the order of %d microseconds.\n", micros)
	fmt.Fprintln(w, "Increase the size of the arrays if this shows that")
	fmt.Fprintf(w, "you are not getting at least %d microseconds per test.\n", quantum*100)
}

// Warning prints the timer precision caveat.
func Warning(w io.Writer) {
	fmt.Fprintln(w, "WARNING -- The above is only a rough guideline.")
	fmt.Fprintln(w, "For best results, please be sure you know the")
	fmt.Fprintln(w, "precision of your system timer.")
}

// Table prints the final per-kernel bandwidth rows.
func Table(w io.Writer, kernels []models.KernelResult) {
	fmt.Fprintln(w, "Function  Bandwidth (MiB/s)  Avg time (s)  Min time (s)  Max time (s)")
	for _, k := range kernels {
		fmt.Fprintf(w, "%-11s%8.0f  %16.6f  %13.6f  %12.6f\n",
			k.Name+":", k.BandwidthMiBps, k.AvgSeconds, k.MinSeconds, k.MaxSeconds)
	}
}

// Validates prints the verification success line.
func Validates(w io.Writer) {
	fmt.Fprintln(w, "Solution validates.")
}

func mib(bytes float64) float64 {
	return bytes / 1024 / 1024
}

func gib(bytes float64) float64 {
	return bytes / 1024 / 1024 / 1024
}
