// Package janitor removes files that a failed upload could not clean up itself.
package janitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"photoGallery/internal/events"
	"photoGallery/internal/filestore"
	"photoGallery/internal/lib/logger/sl"
)

type FileRemover interface {
	Remove(ctx context.Context, url string) error
}

type Janitor struct {
	files FileRemover
	log   *slog.Logger
}

func New(log *slog.Logger, files FileRemover) *Janitor {
	return &Janitor{
		files: files,
		log:   log,
	}
}

// ProcessMessage handles one event from the photo topic. Only orphan events
// carry work; the rest are skipped.
func (j *Janitor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "janitor.ProcessMessage"

	log := j.log.With(slog.String("op", op))

	var event events.Event
	if err := json.Unmarshal(message, &event); err != nil {
		log.Error("failed to unmarshal event", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if event.Type != events.PhotoOrphaned {
		return nil
	}

	var errs []error
	for _, url := range event.URLs {
		err := j.files.Remove(ctx, url)
		switch {
		case err == nil:
			log.Info("orphaned file removed", slog.String("url", url))
		case errors.Is(err, filestore.ErrNotExist):
			log.Debug("orphaned file already gone", slog.String("url", url))
		default:
			log.Error("failed to remove orphaned file", slog.String("url", url), sl.Err(err))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", op, errors.Join(errs...))
	}

	return nil
}
