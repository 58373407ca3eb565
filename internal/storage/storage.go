package storage

import (
	"context"
	"database/sql"
	"errors"

	"photoGallery/internal/models"
)

var (
	ErrPhotoNotFound = errors.New("photo not found")
)

// Tx is the set of statements that run inside one database transaction.
type Tx interface {
	InsertPhoto(ctx context.Context, photo models.Photo) (int64, error)
	// LockPhoto reads the row and holds it until the transaction ends.
	LockPhoto(ctx context.Context, id int64) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id int64) error
}

// PhotoColumns is the select list understood by ScanPhoto.
const PhotoColumns = `id, date, description, "imageUrl", "thumbnailUrl", "takenAt", "createdAt"`

type scanner interface {
	Scan(dest ...any) error
}

func ScanPhoto(s scanner) (models.Photo, error) {
	var (
		photo   models.Photo
		takenAt sql.NullTime
	)

	err := s.Scan(
		&photo.ID,
		&photo.Date,
		&photo.Description,
		&photo.ImageURL,
		&photo.ThumbnailURL,
		&takenAt,
		&photo.CreatedAt,
	)
	if err != nil {
		return photo, err
	}

	if takenAt.Valid {
		t := takenAt.Time
		photo.TakenAt = &t
	}
	photo.FormattedDate = photo.CreatedAt.Format("2006-01-02")

	return photo, nil
}

// ScanPhotos drains rows and closes them.
func ScanPhotos(rows *sql.Rows) ([]models.Photo, error) {
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		photo, err := ScanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	return photos, rows.Err()
}
