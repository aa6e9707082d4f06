package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qrlsm2/streambench/internal/models"
)

const redisOpTimeout = 5 * time.Second

// PublishRedis stores the run under streambench:run:<id> and indexes it in the
// streambench:runs sorted set, scored by the run timestamp so range queries
// come back in wall-clock order.
func PublishRedis(addr string, res *models.RunResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	fields := map[string]interface{}{
		"label":      res.Label,
		"host":       res.Host.Hostname,
		"threads":    res.Threads,
		"iterations": res.Iterations,
		"elements":   res.TotalElements,
		"result":     string(data),
		"created_at": time.Now().Unix(),
	}
	for _, k := range res.Kernels {
		fields["mibps:"+strings.ToLower(k.Name)] = k.BandwidthMiBps
	}

	runKey := fmt.Sprintf("streambench:run:%s", res.RunID)

	pipe := rdb.TxPipeline()
	pipe.HSet(ctx, runKey, fields)
	pipe.ZAdd(ctx, "streambench:runs", redis.Z{
		Score:  float64(res.Timestamp.Unix()),
		Member: res.RunID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store run: %w", err)
	}

	return nil
}
