package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// CloudStore implements usecase.CloudStore using Redis.
type CloudStore struct {
	client *redis.Client
	prefix string
}

// NewCloudStore creates a new CloudStore.
func NewCloudStore(client *redis.Client) *CloudStore {
	return &CloudStore{
		client: client,
		prefix: "hamyon:",
	}
}

// Get retrieves a value by key. A missing key reports ok=false, not an error.
func (s *CloudStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores a value without expiry. The ledger is the system of record
// for its own lifetime, so nothing here ever ages out.
func (s *CloudStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
