package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const TopicContentEvents = "content.events"

const headerEventID = "event_id"

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContentEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.", zap.String("topic", TopicContentEvents))
	return &KafkaProducerClient{ContentEventsWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, evt portfolio.ContentEvent) error {
	msg, err := EncodeContentEvent(evt)
	if err != nil {
		return err
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write content event: %w", err)
	}
	c.logger.Debug("Published content event",
		zap.String("event_id", evt.EventID),
		zap.String("resource", string(evt.Resource)),
		zap.String("action", string(evt.Action)),
	)
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		if err := c.ContentEventsWriter.Close(); err != nil {
			c.logger.Warn("Failed to close Kafka producer", zap.Error(err))
			return
		}
	}
	c.logger.Info("Closed Kafka producer")
}

// EncodeContentEvent keys the message by resource so events for one table
// stay ordered within a partition.
func EncodeContentEvent(evt portfolio.ContentEvent) (kafka.Message, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode content event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(evt.Resource),
		Value: payload,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(evt.EventID)},
		},
		Time: evt.OccurredAt,
	}, nil
}

func DecodeContentEvent(msg kafka.Message) (portfolio.ContentEvent, error) {
	var evt portfolio.ContentEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return portfolio.ContentEvent{}, fmt.Errorf("failed to decode content event: %w", err)
	}
	if evt.Resource == "" {
		return portfolio.ContentEvent{}, fmt.Errorf("content event %q has no resource", evt.EventID)
	}
	return evt, nil
}
