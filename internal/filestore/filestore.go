// Package filestore keeps the image files that photo rows point at.
// Files are addressed by the public URL returned from Save.
package filestore

import (
	"errors"
)

var (
	ErrNotExist   = errors.New("file does not exist")
	ErrInvalidURL = errors.New("url is not managed by this store")
)
