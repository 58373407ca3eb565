// Package events publishes photo lifecycle notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"photoGallery/internal/kafka/producer"
	"photoGallery/internal/lib/logger/sl"
)

type Type string

const (
	PhotoCreated Type = "photo.created"
	PhotoUpdated Type = "photo.updated"
	PhotoDeleted Type = "photo.deleted"
	// PhotoOrphaned lists files left on storage by a failed upload.
	PhotoOrphaned Type = "photo.orphaned"
)

type Event struct {
	Type         Type      `json:"type"`
	PhotoID      int64     `json:"photo_id,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	URLs         []string  `json:"urls,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher struct {
	producer producer.ProducerIface
	log      *slog.Logger
}

func NewPublisher(log *slog.Logger, p producer.ProducerIface) *Publisher {
	return &Publisher{
		producer: p,
		log:      log,
	}
}

func (p *Publisher) Publish(ctx context.Context, e Event) error {
	const op = "events.Publish"

	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	message, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var key []byte
	if e.PhotoID != 0 {
		key = []byte(strconv.FormatInt(e.PhotoID, 10))
	}

	if err = p.producer.SendMessage(ctx, key, message); err != nil {
		p.log.Error("failed to publish event", slog.String("op", op), slog.String("type", string(e.Type)), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Nop drops every event. It is used when kafka is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error {
	return nil
}
