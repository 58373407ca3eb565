package janitor_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/events"
	"photoGallery/internal/filestore"
	"photoGallery/internal/janitor"
	"photoGallery/internal/lib/logger/handlers/slogdiscard"
)

type fakeFiles struct {
	removed []string
	errs    map[string]error
}

func (f *fakeFiles) Remove(_ context.Context, url string) error {
	if err, ok := f.errs[url]; ok {
		return err
	}
	f.removed = append(f.removed, url)
	return nil
}

func message(t *testing.T, e events.Event) []byte {
	t.Helper()

	b, err := json.Marshal(e)
	require.NoError(t, err)

	return b
}

func TestProcessMessage(t *testing.T) {
	tests := []struct {
		name        string
		event       events.Event
		errs        map[string]error
		wantRemoved []string
		wantErr     bool
	}{
		{
			name:        "Orphans Removed",
			event:       events.Event{Type: events.PhotoOrphaned, URLs: []string{"/uploads/a.jpg", "/uploads/a-thumb.jpg"}},
			wantRemoved: []string{"/uploads/a.jpg", "/uploads/a-thumb.jpg"},
		},
		{
			name:        "Missing File Is Fine",
			event:       events.Event{Type: events.PhotoOrphaned, URLs: []string{"/uploads/a.jpg", "/uploads/b.jpg"}},
			errs:        map[string]error{"/uploads/a.jpg": fmt.Errorf("remove: %w", filestore.ErrNotExist)},
			wantRemoved: []string{"/uploads/b.jpg"},
		},
		{
			name:    "Removal Failure Is Reported",
			event:   events.Event{Type: events.PhotoOrphaned, URLs: []string{"/uploads/a.jpg"}},
			errs:    map[string]error{"/uploads/a.jpg": errors.New("permission denied")},
			wantErr: true,
		},
		{
			name:  "Other Events Ignored",
			event: events.Event{Type: events.PhotoDeleted, PhotoID: 1, ImageURL: "/uploads/a.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := &fakeFiles{errs: tt.errs}
			j := janitor.New(slogdiscard.NewDiscardLogger(), files)

			err := j.ProcessMessage(context.Background(), message(t, tt.event))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantRemoved, files.removed)
		})
	}

	t.Run("Bad Payload", func(t *testing.T) {
		j := janitor.New(slogdiscard.NewDiscardLogger(), &fakeFiles{})
		require.Error(t, j.ProcessMessage(context.Background(), []byte("{")))
	})
}
