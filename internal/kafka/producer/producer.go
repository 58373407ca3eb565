package producer

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"photoGallery/internal/config"
	"photoGallery/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProducerIface
type ProducerIface interface {
	SendMessage(ctx context.Context, key, message []byte) error
}

// batchTimeout bounds how long a single event waits for a batch to fill.
// Each request publishes only a few events, so the writer's 1s default
// would show up as latency on every upload, edit and delete.
const batchTimeout = 10 * time.Millisecond

type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewProducer writes to the configured topic. Messages with the same key land
// on the same partition, so events of one photo stay ordered.
func NewProducer(kafkaCfg *config.Kafka, log *slog.Logger) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaCfg.Brokers...),
		Topic:                  kafkaCfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		log:    log,
	}, nil
}

func (p *Producer) SendMessage(ctx context.Context, key, message []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: message,
	}

	err := p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.log.Error("failed to send message to kafka", slog.String("topic", p.writer.Topic), sl.Err(err))
		return err
	}

	p.log.Debug("message sent to kafka", slog.String("topic", p.writer.Topic))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
