package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const (
	pingInitialInterval = 100 * time.Millisecond
	pingMaxElapsedTime  = 5 * time.Second
)

// NewClient creates a new Redis client. The initial ping is retried with
// exponential backoff so a container-orchestrated redis that is still
// starting does not fail the whole service.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = pingInitialInterval
	b.MaxElapsedTime = pingMaxElapsedTime

	err = backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, backoff.WithContext(b, ctx))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
