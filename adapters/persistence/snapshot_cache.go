package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	snapshotCacheKey      = "portfolio:snapshot"
	snapshotGenerationKey = "portfolio:snapshot:generation"
)

type redisSnapshotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisSnapshotCache(rdb *redis.Client, ttl time.Duration, logger logger.Logger) service.SnapshotCache {
	return &redisSnapshotCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *redisSnapshotCache) Get(ctx context.Context) (*portfolio.Snapshot, bool, error) {
	raw, err := c.rdb.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read snapshot cache: %w", err)
	}

	var snap portfolio.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// A stale layout is treated as a miss and overwritten on the next Set.
		c.logger.Warn("Discarding undecodable snapshot cache entry", zap.Error(err))
		return nil, false, nil
	}
	return &snap, true, nil
}

func (c *redisSnapshotCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, snapshotGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read snapshot generation: %w", err)
	}
	return gen, nil
}

// Set stores the snapshot only while the generation still equals the one the
// caller read before building it. The check and the write run in one
// WATCH/MULTI transaction.
func (c *redisSnapshotCache) Set(ctx context.Context, s *portfolio.Snapshot, generation int64) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, snapshotGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return service.ErrStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, snapshotCacheKey, raw, c.ttl)
			return nil
		})
		return err
	}, snapshotGenerationKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		return service.ErrStaleSnapshot
	default:
		return fmt.Errorf("write snapshot cache: %w", err)
	}
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, snapshotGenerationKey)
		pipe.Del(ctx, snapshotCacheKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate snapshot cache: %w", err)
	}
	return nil
}
