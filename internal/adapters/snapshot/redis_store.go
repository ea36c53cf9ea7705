// Package snapshot persists the latest cleaned dataset in Redis so a
// freshly started instance can serve quotes while the upstream is down.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"freight-quotation-service/internal/domain"
)

const (
	datasetKey = "quotation:dataset"

	// Snapshots are a degraded-mode fallback, not a freshness
	// guarantee, so they outlive the in-memory TTL by a wide margin.
	snapshotTTL = 24 * time.Hour
)

// RedisStore implements the SnapshotStore port on a single Redis key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisStoreWithClient is used by tests to inject a miniredis-backed client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, records []domain.RouteRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("save snapshot: encode dataset: %w", err)
	}

	if err := s.client.Set(ctx, datasetKey, payload, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.RouteRecord, error) {
	payload, err := s.client.Get(ctx, datasetKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errors.New("load snapshot: no snapshot stored")
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var records []domain.RouteRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("load snapshot: decode dataset: %w", err)
	}
	return records, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
