// internal/writer/redis.go
package writer

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	cfg "github.com/knikolaus-pice/omron-load-display/internal/config"
	"github.com/knikolaus-pice/omron-load-display/internal/poller"
)

// redisWriter keeps the latest reading in a single key. No history,
// no transactions: a plain SET per successful poll cycle.
type redisWriter struct {
	cli *redis.Client
	key string
}

// NewRedis creates a writer bound to one Redis key.
func NewRedis(rc cfg.RedisConfig, key string) (*redisWriter, error) {
	if rc.Endpoint == "" {
		return nil, errors.New("writer redis: endpoint required")
	}
	if key == "" {
		return nil, errors.New("writer redis: key required")
	}

	return &redisWriter{
		cli: redis.NewClient(&redis.Options{
			Addr: rc.Endpoint,
			DB:   rc.DB,
		}),
		key: key,
	}, nil
}

func (w *redisWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}
	if err := w.cli.Set(context.Background(), w.key, FormatValue(res.Value), 0).Err(); err != nil {
		return fmt.Errorf("writer redis: set %s: %w", w.key, err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (w *redisWriter) Close() error {
	return w.cli.Close()
}
