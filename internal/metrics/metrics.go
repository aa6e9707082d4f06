package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/qrlsm2/streambench/internal/models"
)

var (
	// Per-kernel gauges
	KernelBandwidthMiBps = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "streambench_kernel_bandwidth_mibps",
			Help: "Best-case bandwidth of the last run in MiB/s",
		},
		[]string{"kernel"}, // copy, scale, add, triad
	)

	KernelSeconds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "streambench_kernel_seconds",
			Help: "Per-iteration wall time of the last run in seconds",
		},
		[]string{"kernel", "stat"}, // stat: avg, min, max
	)

	// Run shape gauges
	ArrayBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "streambench_array_bytes",
			Help: "Total bytes held by the three arrays across all threads",
		},
	)

	Threads = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "streambench_threads",
			Help: "Number of benchmark threads in the last run",
		},
	)

	Iterations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "streambench_iterations",
			Help: "Number of timed iterations in the last run",
		},
	)
)

// Record loads one run's reduced figures into the default registry.
func Record(res *models.RunResult) {
	for _, k := range res.Kernels {
		KernelBandwidthMiBps.WithLabelValues(k.Name).Set(k.BandwidthMiBps)
		KernelSeconds.WithLabelValues(k.Name, "avg").Set(k.AvgSeconds)
		KernelSeconds.WithLabelValues(k.Name, "min").Set(k.MinSeconds)
		KernelSeconds.WithLabelValues(k.Name, "max").Set(k.MaxSeconds)
	}
	ArrayBytes.Set(float64(3 * int64(res.ElementBytes) * res.ArraySize * int64(res.Threads)))
	Threads.Set(float64(res.Threads))
	Iterations.Set(float64(res.Iterations))
}

// Push records the run and ships the whole registry to a Pushgateway in one
// batch, grouped by the host that produced it.
func Push(gatewayURL string, res *models.RunResult) error {
	Record(res)
	err := push.New(gatewayURL, "streambench").
		Gatherer(prometheus.DefaultGatherer).
		Grouping("instance", res.Host.Hostname).
		Push()
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
