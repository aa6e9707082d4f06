// Package models holds the run result types shared by the report and every
// exporter.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HostInfo mirrors the banner's machine facts in exportable form.
type HostInfo struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	CPUModel      string `json:"cpu_model"`
	LogicalCores  int    `json:"cpu_logical_cores"`
	PhysicalCores int    `json:"cpu_physical_cores"`
	MemoryBytes   uint64 `json:"memory_bytes"`
	GoVersion     string `json:"go_version"`
}

// KernelResult is one reduced row of the report.
type KernelResult struct {
	Name           string  `json:"name"`
	Bytes          int64   `json:"bytes_moved"`
	BandwidthMiBps float64 `json:"bandwidth_mibps"`
	AvgSeconds     float64 `json:"avg_seconds"`
	MinSeconds     float64 `json:"min_seconds"`
	MaxSeconds     float64 `json:"max_seconds"`
}

// RunResult is the complete record of one benchmark execution, the payload
// every exporter consumes.
type RunResult struct {
	RunID         string         `json:"run_id"`
	Label         string         `json:"label,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
	Host          HostInfo       `json:"host"`
	TotalElements int64          `json:"total_elements"`
	ArraySize     int64          `json:"array_size"`
	Threads       int            `json:"threads"`
	Iterations    int            `json:"iterations"`
	ElementBytes  int            `json:"element_bytes"`
	GranularityUs int            `json:"clock_granularity_us"`
	Kernels       []KernelResult `json:"kernels"`

	// Verification is "passed", "failed", or empty when the check was off.
	Verification string `json:"verification,omitempty"`
}

// NewRunID labels one process execution across the report and exporters.
func NewRunID() string {
	return uuid.New().String()
}
