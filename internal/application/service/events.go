package service

import (
	"context"
	"errors"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, evt portfolio.ContentEvent) error
}

// ErrStaleSnapshot is returned by SnapshotCache.Set when the cache was
// invalidated after the snapshot's generation was read.
var ErrStaleSnapshot = errors.New("snapshot cache generation moved")

// SnapshotCache holds one portfolio snapshot. Every Invalidate bumps a
// generation counter; Set only stores a snapshot built under the current
// generation, so a write that lands between a store read and Set cannot be
// hidden behind a stale entry.
type SnapshotCache interface {
	Get(ctx context.Context) (*portfolio.Snapshot, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, s *portfolio.Snapshot, generation int64) error
	Invalidate(ctx context.Context) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishContentEvent(context.Context, portfolio.ContentEvent) error { return nil }

// NopCache is used when no Redis is configured. It never hits.
type NopCache struct{}

func (NopCache) Get(context.Context) (*portfolio.Snapshot, bool, error) { return nil, false, nil }
func (NopCache) Generation(context.Context) (int64, error)              { return 0, nil }
func (NopCache) Set(context.Context, *portfolio.Snapshot, int64) error  { return nil }
func (NopCache) Invalidate(context.Context) error                       { return nil }
