package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/qrlsm2/streambench/internal/clock"
	"github.com/qrlsm2/streambench/internal/export"
	"github.com/qrlsm2/streambench/internal/hostinfo"
	"github.com/qrlsm2/streambench/internal/metrics"
	"github.com/qrlsm2/streambench/internal/models"
	"github.com/qrlsm2/streambench/internal/report"
	"github.com/qrlsm2/streambench/internal/stream"
)

type options struct {
	totalElements int64
	iterations    int
	verify        bool
	label         string

	jsonPath    string
	redisAddr   string
	influx      export.InfluxConfig
	pushgateway string
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseFlags() options {
	opts := options{}
	flag.StringVar(&opts.jsonPath, "json", envOr("STREAMBENCH_JSON", ""), "write the run result to this file")
	flag.StringVar(&opts.redisAddr, "redis", envOr("STREAMBENCH_REDIS_ADDR", ""), "publish the run to this redis address")
	flag.StringVar(&opts.influx.URL, "influx-url", envOr("STREAMBENCH_INFLUX_URL", ""), "write per-kernel points to this InfluxDB server")
	flag.StringVar(&opts.influx.Token, "influx-token", envOr("STREAMBENCH_INFLUX_TOKEN", ""), "InfluxDB API token")
	flag.StringVar(&opts.influx.Org, "influx-org", envOr("STREAMBENCH_INFLUX_ORG", ""), "InfluxDB organization")
	flag.StringVar(&opts.influx.Bucket, "influx-bucket", envOr("STREAMBENCH_INFLUX_BUCKET", "streambench"), "InfluxDB bucket")
	flag.StringVar(&opts.pushgateway, "pushgateway", envOr("STREAMBENCH_PUSHGATEWAY", ""), "push gauges to this Pushgateway")
	flag.BoolVar(&opts.verify, "verify", envBool("STREAMBENCH_VERIFY", false), "check array contents after the timed loop")
	flag.StringVar(&opts.label, "label", envOr("STREAMBENCH_LABEL", ""), "free-form run label carried into exports")
	flag.Parse()

	opts.iterations = envInt("STREAMBENCH_NTIMES", stream.DefaultIterations)

	switch flag.NArg() {
	case 0:
		opts.totalElements = stream.DefaultTotalElements
	case 1:
		n, err := strconv.ParseInt(flag.Arg(0), 10, 64)
		if err != nil || n < 1 {
			log.Fatalf("invalid total element count %q: want a positive integer", flag.Arg(0))
		}
		opts.totalElements = n
	default:
		log.Fatalf("too many arguments: want at most one total element count")
	}
	return opts
}

func run(opts options) error {
	out := os.Stdout
	start := time.Now()

	cfg := stream.Config{
		TotalElements: opts.totalElements,
		Iterations:    opts.iterations,
		Verify:        opts.verify,
		Label:         opts.label,
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	report.Intro(out, stream.ElementBytes, cfg.Iterations)

	host, err := hostinfo.Collect()
	if err != nil {
		log.Printf("host facts incomplete: %v", err)
	}
	hostRes := hostResult(host)
	report.Host(out, hostRes)
	report.Machine(out, host.LogicalCores, cfg.Workers)
	report.Rule(out)

	// The pre-flight check stands in for a failed allocation: past it, the
	// partitions are assumed to fit.
	if host.AvailableMemory > 0 && uint64(cfg.TotalBytes()) > host.AvailableMemory {
		return fmt.Errorf("arrays need %d MiB but only %d MiB of memory is available",
			cfg.TotalBytes()/(1024*1024), host.AvailableMemory/(1024*1024))
	}

	bench, err := stream.New(cfg)
	if err != nil {
		return err
	}
	defer bench.Close()

	report.Pinning(out, bench.Pool().CPUs())
	report.Rule(out)

	report.Memory(out, cfg.ArraySize(), stream.ElementBytes, cfg.Workers)
	report.Rule(out)

	quantum := clock.Granularity()
	report.Granularity(out, quantum)
	if quantum < 1 {
		quantum = 1
	}
	report.Rule(out)

	report.Initializing(out)
	bench.Initialize()
	report.Rule(out)

	report.Estimate(out, bench.EstimateKernelMicros(), quantum)
	report.Rule(out)
	report.Warning(out)
	report.Rule(out)

	timing := bench.Measure()
	stats := stream.Reduce(timing, &cfg)
	res := buildResult(cfg, hostRes, quantum, stats)

	report.Table(out, res.Kernels)
	report.Rule(out)

	var verifyErr error
	if cfg.Verify {
		if verifyErr = bench.Verify(cfg.Iterations); verifyErr != nil {
			res.Verification = "failed"
		} else {
			res.Verification = "passed"
			report.Validates(out)
			report.Rule(out)
		}
	}

	exportResults(opts, res)

	if verifyErr != nil {
		return fmt.Errorf("verification failed: %w", verifyErr)
	}
	log.Printf("Run %s complete in %v", res.RunID, time.Since(start))
	return nil
}

func hostResult(info hostinfo.Info) models.HostInfo {
	return models.HostInfo{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Arch:          info.Arch,
		CPUModel:      info.CPUModel,
		LogicalCores:  info.LogicalCores,
		PhysicalCores: info.PhysicalCores,
		MemoryBytes:   info.TotalMemory,
		GoVersion:     info.GoVersion,
	}
}

func buildResult(cfg stream.Config, host models.HostInfo, quantum int, stats [stream.NumKernels]stream.KernelStats) *models.RunResult {
	res := &models.RunResult{
		RunID:         models.NewRunID(),
		Label:         cfg.Label,
		Timestamp:     time.Now().UTC(),
		Host:          host,
		TotalElements: cfg.TotalElements,
		ArraySize:     cfg.ArraySize(),
		Threads:       cfg.Workers,
		Iterations:    cfg.Iterations,
		ElementBytes:  stream.ElementBytes,
		GranularityUs: quantum,
		Kernels:       make([]models.KernelResult, 0, len(stats)),
	}
	for _, s := range stats {
		res.Kernels = append(res.Kernels, models.KernelResult{
			Name:           s.Kernel.String(),
			Bytes:          s.Bytes,
			BandwidthMiBps: s.BandwidthMiBps,
			AvgSeconds:     s.AvgSeconds,
			MinSeconds:     s.MinSeconds,
			MaxSeconds:     s.MaxSeconds,
		})
	}
	return res
}

// exportResults ships the run to every configured sink. Failures are
// advisories; the exit code reflects measurement and verification only.
func exportResults(opts options, res *models.RunResult) {
	if opts.jsonPath != "" {
		if err := export.WriteJSON(opts.jsonPath, res); err != nil {
			log.Printf("json export: %v", err)
		} else {
			log.Printf("Result written to %s", opts.jsonPath)
		}
	}
	if opts.redisAddr != "" {
		if err := export.PublishRedis(opts.redisAddr, res); err != nil {
			log.Printf("redis export: %v", err)
		}
	}
	if opts.influx.URL != "" {
		if err := export.WriteInflux(opts.influx, res); err != nil {
			log.Printf("influx export: %v", err)
		}
	}
	if opts.pushgateway != "" {
		if err := metrics.Push(opts.pushgateway, res); err != nil {
			log.Printf("pushgateway export: %v", err)
		}
	}
}

// util helpers
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		var b bool
		if err := json.Unmarshal([]byte(strings.ToLower(v)), &b); err == nil {
			return b
		}
	}
	return def
}
