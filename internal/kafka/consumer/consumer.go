package consumer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"photoGallery/internal/config"
	"photoGallery/internal/lib/logger/sl"
)

type Consumer struct {
	reader *kafka.Reader
	log    *slog.Logger
}

func NewConsumer(kafkaCfg *config.Kafka, log *slog.Logger) (*Consumer, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        kafkaCfg.Brokers,
		Topic:          kafkaCfg.Topic,
		GroupID:        kafkaCfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        1 * time.Second,
		CommitInterval: 1 * time.Second,
	})

	return &Consumer{
		reader: reader,
		log:    log,
	}, nil
}

// ReadMessages feeds every message to handler until ctx is cancelled.
func (c *Consumer) ReadMessages(ctx context.Context, handler func(context.Context, []byte) error) {
	c.log.Info("kafka consumer started")

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.log.Info("kafka consumer stopped")
				return
			}
			c.log.Error("error reading message from kafka", sl.Err(err))
			continue
		}

		c.log.Debug(
			"message received",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
		)

		if err = handler(ctx, m.Value); err != nil {
			c.log.Error("error handling message", sl.Err(err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
