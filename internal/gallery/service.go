// Package gallery keeps photo rows and their image files consistent.
//
// Every row written by Service points at two files that were stored before
// the row was committed, and every delete removes the files together with
// the row. The database transaction is the only coordination between
// concurrent requests.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"photoGallery/internal/auth"
	"photoGallery/internal/events"
	"photoGallery/internal/filestore"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/models"
	"photoGallery/internal/storage"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

type Store interface {
	CountPhotos(ctx context.Context) (int, error)
	ListPhotos(ctx context.Context, limit, offset int) ([]models.Photo, error)
	AllPhotos(ctx context.Context) ([]models.Photo, error)
	GetPhoto(ctx context.Context, id int64) (*models.Photo, error)
	PhotosByDate(ctx context.Context, date string) ([]models.Photo, error)
	UpdatePhoto(ctx context.Context, id int64, date, description string) error
	InTx(ctx context.Context, fn func(tx storage.Tx) error) error
}

type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Remove(ctx context.Context, url string) error
}

type MediaProcessor interface {
	DeriveFullSize(data []byte) ([]byte, error)
	DeriveThumbnail(data []byte) ([]byte, error)
	TakenAt(data []byte) (time.Time, bool)
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Upload is one image file received with a create request.
type Upload struct {
	Filename string
	Data     []byte
}

type Page struct {
	Photos []models.Photo `json:"photos"`
	Total  int            `json:"total"`
}

type Detail struct {
	Photo    models.Photo   `json:"photo"`
	Siblings []models.Photo `json:"siblings"`
}

type Options struct {
	MaxFiles int
}

type Service struct {
	log    *slog.Logger
	store  Store
	files  FileStore
	media  MediaProcessor
	events EventPublisher
	opts   Options
	now    func() time.Time
}

func New(log *slog.Logger, store Store, files FileStore, media MediaProcessor, publisher EventPublisher, opts Options) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &Service{
		log:    log,
		store:  store,
		files:  files,
		media:  media,
		events: publisher,
		opts:   opts,
		now:    time.Now,
	}
}

func requireAdmin(ctx context.Context) error {
	if !auth.IsAdmin(ctx) {
		return ErrUnauthorized
	}
	return nil
}

// List returns one page of photos, newest first. Non-positive page or limit
// values fall back to the defaults.
func (s *Service) List(ctx context.Context, page, limit int) (*Page, error) {
	const op = "gallery.Service.List"

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total, err := s.store.CountPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	if page-1 > math.MaxInt/limit {
		return &Page{Photos: []models.Photo{}, Total: total}, nil
	}

	photos, err := s.store.ListPhotos(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return &Page{Photos: photos, Total: total}, nil
}

func (s *Service) All(ctx context.Context) ([]models.Photo, error) {
	const op = "gallery.Service.All"

	photos, err := s.store.AllPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return photos, nil
}

// Get returns the photo and the other photos that share its display date.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	const op = "gallery.Service.Get"

	photo, err := s.store.GetPhoto(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
		}
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	sameDay, err := s.store.PhotosByDate(ctx, photo.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	siblings := make([]models.Photo, 0, len(sameDay))
	for _, p := range sameDay {
		if p.ID != photo.ID {
			siblings = append(siblings, p)
		}
	}

	return &Detail{Photo: *photo, Siblings: siblings}, nil
}

func (s *Service) Timeline(ctx context.Context) ([]Day, error) {
	const op = "gallery.Service.Timeline"

	photos, err := s.store.AllPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return GroupByDay(photos), nil
}

// Create stores every upload as a new photo sharing date and description.
// Images are derived and written before the transaction starts, so the
// transaction only holds the inserts. Rows are committed together or not at
// all; files written for a request that fails are removed again.
func (s *Service) Create(ctx context.Context, date, description string, uploads []Upload) (int, error) {
	const op = "gallery.Service.Create"

	log := s.log.With(slog.String("op", op))

	if err := requireAdmin(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	date = normalizeDate(date)
	if date == "" || strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("%s: %w: date and description are required", op, ErrValidation)
	}
	if len(uploads) == 0 {
		return 0, fmt.Errorf("%s: %w: no files uploaded", op, ErrValidation)
	}
	if s.opts.MaxFiles > 0 && len(uploads) > s.opts.MaxFiles {
		return 0, fmt.Errorf("%s: %w: at most %d files per upload", op, ErrValidation, s.opts.MaxFiles)
	}

	stamp := s.now().UnixMilli()

	var written []string

	pending := make([]models.Photo, 0, len(uploads))
	for _, up := range uploads {
		photo, urls, err := s.storeDerivatives(ctx, stamp, up)
		written = append(written, urls...)
		if err != nil {
			log.Error("upload aborted", slog.String("filename", up.Filename), sl.Err(err))
			s.removeWritten(context.WithoutCancel(ctx), written)
			return 0, fmt.Errorf("%s: %w", op, classify(err))
		}

		photo.Date = date
		photo.Description = description
		pending = append(pending, photo)
	}

	created := make([]models.Photo, 0, len(pending))

	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		created = created[:0]
		for _, photo := range pending {
			id, err := tx.InsertPhoto(ctx, photo)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPersistence, err)
			}
			photo.ID = id
			created = append(created, photo)
		}
		return nil
	})
	if err != nil {
		log.Error("upload rolled back", slog.Int("files", len(uploads)), sl.Err(err))
		s.removeWritten(context.WithoutCancel(ctx), written)
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}

	log.Info("photos created", slog.Int("count", len(created)))

	for _, p := range created {
		s.publish(ctx, events.Event{
			Type:         events.PhotoCreated,
			PhotoID:      p.ID,
			ImageURL:     p.ImageURL,
			ThumbnailURL: p.ThumbnailURL,
		})
	}

	return len(created), nil
}

// storeDerivatives derives both images before writing either, so a corrupt
// upload leaves nothing on storage. It returns the URLs it wrote even when
// it fails part way.
func (s *Service) storeDerivatives(ctx context.Context, stamp int64, up Upload) (models.Photo, []string, error) {
	var photo models.Photo

	full, err := s.media.DeriveFullSize(up.Data)
	if err != nil {
		return photo, nil, fmt.Errorf("%w: %s: %w", ErrProcessing, up.Filename, err)
	}
	thumb, err := s.media.DeriveThumbnail(up.Data)
	if err != nil {
		return photo, nil, fmt.Errorf("%w: %s: %w", ErrProcessing, up.Filename, err)
	}

	fullName, thumbName := fileNames(stamp, up.Filename, full)

	var written []string

	photo.ImageURL, err = s.files.Save(ctx, fullName, full)
	if err != nil {
		return photo, written, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	written = append(written, photo.ImageURL)

	photo.ThumbnailURL, err = s.files.Save(ctx, thumbName, thumb)
	if err != nil {
		return photo, written, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	written = append(written, photo.ThumbnailURL)

	if t, ok := s.media.TakenAt(up.Data); ok {
		photo.TakenAt = &t
	}

	return photo, written, nil
}

// removeWritten undoes the file writes of a failed upload. Files that cannot
// be removed are handed to the janitor through an orphan event.
func (s *Service) removeWritten(ctx context.Context, urls []string) {
	const op = "gallery.Service.removeWritten"

	log := s.log.With(slog.String("op", op))

	var orphans []string
	for _, url := range urls {
		err := s.files.Remove(ctx, url)
		if err == nil || errors.Is(err, filestore.ErrNotExist) {
			continue
		}
		log.Error("failed to remove file of rolled back upload", slog.String("url", url), sl.Err(err))
		orphans = append(orphans, url)
	}

	if len(orphans) > 0 {
		s.publish(ctx, events.Event{Type: events.PhotoOrphaned, URLs: orphans})
	}
}

// Update replaces date and description of an existing photo.
func (s *Service) Update(ctx context.Context, id int64, date, description string) error {
	const op = "gallery.Service.Update"

	if err := requireAdmin(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	date = normalizeDate(date)
	if date == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("%s: %w: date and description are required", op, ErrValidation)
	}

	if err := s.store.UpdatePhoto(ctx, id, date, description); err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
		}
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	s.log.Info("photo updated", slog.String("op", op), slog.Int64("photo_id", id))

	s.publish(ctx, events.Event{Type: events.PhotoUpdated, PhotoID: id})

	return nil
}

// Delete removes both files and the row in one transaction. A file that is
// already missing does not block the row removal; any other storage error
// rolls the transaction back.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "gallery.Service.Delete"

	log := s.log.With(slog.String("op", op), slog.Int64("photo_id", id))

	if err := requireAdmin(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var deleted *models.Photo

	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		photo, err := tx.LockPhoto(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrPhotoNotFound) {
				return fmt.Errorf("%w: %w", ErrNotFound, err)
			}
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}

		for _, url := range []string{photo.ImageURL, photo.ThumbnailURL} {
			if url == "" {
				continue
			}
			if err = s.files.Remove(ctx, url); err != nil {
				if errors.Is(err, filestore.ErrNotExist) {
					log.Warn("file already missing", slog.String("url", url))
					continue
				}
				return fmt.Errorf("%w: %w", ErrStorage, err)
			}
		}

		if err = tx.DeletePhoto(ctx, id); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}

		deleted = photo
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error("delete rolled back", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	log.Info("photo deleted")

	s.publish(ctx, events.Event{
		Type:         events.PhotoDeleted,
		PhotoID:      deleted.ID,
		ImageURL:     deleted.ImageURL,
		ThumbnailURL: deleted.ThumbnailURL,
	})

	return nil
}

// normalizeDate trims the display date so Create and Update store the same
// value for the same input.
func normalizeDate(date string) string {
	return strings.TrimSpace(date)
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.Warn("event not published", slog.String("type", string(e.Type)), sl.Err(err))
	}
}
