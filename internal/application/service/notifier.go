package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const publishTimeout = 5 * time.Second

// ChangeNotifier runs after every successful write: it drops the cached
// snapshot and announces the change on the event bus. Neither step can fail
// the write that triggered it.
type ChangeNotifier struct {
	cache     SnapshotCache
	publisher EventPublisher
	logger    logger.Logger
}

func NewChangeNotifier(cache SnapshotCache, publisher EventPublisher, log logger.Logger) *ChangeNotifier {
	if cache == nil {
		cache = NopCache{}
	}
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &ChangeNotifier{cache: cache, publisher: publisher, logger: log}
}

func (n *ChangeNotifier) Notify(ctx context.Context, resource portfolio.Resource, action portfolio.Action, id int64) {
	if err := n.cache.Invalidate(ctx); err != nil {
		n.logger.Warn("Failed to invalidate portfolio snapshot",
			zap.String("resource", string(resource)), zap.Error(err))
	}

	evt := portfolio.ContentEvent{
		EventID:    uuid.NewString(),
		Resource:   resource,
		Action:     action,
		ResourceID: id,
		OccurredAt: time.Now().UTC(),
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := n.publisher.PublishContentEvent(pubCtx, evt); err != nil {
			n.logger.Error("Failed to publish content event", err,
				zap.String("event_id", evt.EventID),
				zap.String("resource", string(evt.Resource)),
				zap.String("action", string(evt.Action)),
			)
		}
	}()
}
