package models

import (
	"time"
)

// Photo is one row of the photos table. ImageURL and ThumbnailURL point at
// files in durable storage and never change after the row is created.
type Photo struct {
	ID            int64      `json:"id"`
	Date          string     `json:"date"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	ThumbnailURL  string     `json:"thumbnailUrl"`
	TakenAt       *time.Time `json:"takenAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	FormattedDate string     `json:"formatted_date"`
}
