package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/flights/internal/logger"
	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded flight event. A returned error stops consumption.
type EventHandler func(ctx context.Context, event FlightEvent) error

// Consumer reads flight events as a member of a consumer group.
type Consumer struct {
	reader *kafka.Reader
	log    logger.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log logger.Logger) *Consumer {
	cfg := kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       1 << 20,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	}
	return &Consumer{reader: kafka.NewReader(cfg), log: log.With("topic", topic, "group", groupID)}
}

// Close is safe on a nil or unopened consumer.
func (c *Consumer) Close() error {
	if c != nil && c.reader != nil {
		return c.reader.Close()
	}
	return nil
}

// Consume reads flight events until ctx is done or handler fails.
// Messages that do not decode are logged and skipped.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}

		event, err := DecodeFlightEvent(msg.Value)
		if err != nil {
			c.log.Warn("skip undecodable flight event", "offset", msg.Offset, "partition", msg.Partition, "error", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}
