package producer

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"photoGallery/internal/config"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

func TestNewProducer(t *testing.T) {
	cfg := &config.Kafka{Brokers: []string{"localhost:9092"}, Topic: "photo-events"}

	p, err := NewProducer(cfg, slogdiscard.NewDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	require.Equal(t, "photo-events", p.writer.Topic)
	require.IsType(t, &kafka.Hash{}, p.writer.Balancer)
	// a single event must not wait out the writer's default one second batch window
	require.LessOrEqual(t, p.writer.BatchTimeout, 50*time.Millisecond)
	require.Positive(t, p.writer.BatchTimeout)
}
