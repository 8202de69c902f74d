package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type recordingPublisher struct {
	events chan portfolio.ContentEvent
	err    error
}

func (p *recordingPublisher) PublishContentEvent(_ context.Context, evt portfolio.ContentEvent) error {
	p.events <- evt
	return p.err
}

type failingCache struct {
	NopCache
	invalidated int
}

func (c *failingCache) Invalidate(context.Context) error {
	c.invalidated++
	return errors.New("redis down")
}

func TestChangeNotifier_InvalidatesAndPublishes(t *testing.T) {
	cache := &failingCache{}
	pub := &recordingPublisher{events: make(chan portfolio.ContentEvent, 1), err: errors.New("broker down")}
	n := NewChangeNotifier(cache, pub, logger.NewNop())

	n.Notify(context.Background(), portfolio.ResourceSkill, portfolio.ActionDeleted, 7)

	assert.Equal(t, 1, cache.invalidated)
	select {
	case evt := <-pub.events:
		assert.Equal(t, portfolio.ResourceSkill, evt.Resource)
		assert.Equal(t, portfolio.ActionDeleted, evt.Action)
		assert.Equal(t, int64(7), evt.ResourceID)
		assert.NotEmpty(t, evt.EventID)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "content event was not published")
	}
}
