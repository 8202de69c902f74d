package event

import (
	"context"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const SnapshotConsumerGroup = "portfolio-snapshot-group"

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ContentEventHandler func(ctx context.Context, evt portfolio.ContentEvent) error

// ContentEventConsumer feeds every content event to a handler. A message is
// committed once handled or once it is known to be undecodable. A handler
// failure only skips the commit: offsets are committed per partition, so the
// next successful commit moves the group past the failed message and it is
// redelivered only if the worker restarts first. Handlers must therefore be
// idempotent rebuilds, which the snapshot rebuild is.
type ContentEventConsumer struct {
	reader  messageReader
	handler ContentEventHandler
	logger  logger.Logger
}

func NewContentEventConsumer(cfg config.Config, groupID string, handler ContentEventHandler, log logger.Logger) *ContentEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicContentEvents,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &ContentEventConsumer{reader: reader, handler: handler, logger: log}
}

// Run blocks until ctx is cancelled or the reader is closed.
func (c *ContentEventConsumer) Run(ctx context.Context) error {
	c.logger.Info("Worker listening on topic", zap.String("topic", TopicContentEvents))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		evt, err := DecodeContentEvent(msg)
		if err != nil {
			c.logger.Warn("Skipping undecodable content event",
				zap.Int64("offset", msg.Offset), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		if err := c.handler(ctx, evt); err != nil {
			c.logger.Error("Failed to process content event", err,
				zap.String("event_id", evt.EventID),
				zap.String("resource", string(evt.Resource)),
			)
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *ContentEventConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *ContentEventConsumer) Close() error {
	return c.reader.Close()
}
