package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/qrlsm2/streambench/internal/models"
)

const influxOpTimeout = 10 * time.Second

// InfluxConfig carries the connection coordinates for one InfluxDB bucket.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// WriteInflux records one stream_bandwidth point per kernel, tagged by kernel,
// host and run ID so runs from a fleet land in the same measurement.
func WriteInflux(cfg InfluxConfig, res *models.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), influxOpTimeout)
	defer cancel()

	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	defer client.Close()

	writeAPI := client.WriteAPIBlocking(cfg.Org, cfg.Bucket)

	for _, k := range res.Kernels {
		p := influxdb2.NewPoint("stream_bandwidth",
			map[string]string{
				"kernel": strings.ToLower(k.Name),
				"host":   res.Host.Hostname,
				"run_id": res.RunID,
			},
			map[string]interface{}{
				"mibps":       k.BandwidthMiBps,
				"avg_seconds": k.AvgSeconds,
				"min_seconds": k.MinSeconds,
				"max_seconds": k.MaxSeconds,
				"bytes":       k.Bytes,
			},
			res.Timestamp,
		)
		if err := writeAPI.WritePoint(ctx, p); err != nil {
			return fmt.Errorf("failed to write %s point: %w", k.Name, err)
		}
	}

	return nil
}
