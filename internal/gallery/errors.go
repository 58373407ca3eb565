package gallery

import (
	"errors"
)

// Error kinds returned by Service. Callers test for them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("photo not found")
	ErrProcessing   = errors.New("image processing failed")
	ErrStorage      = errors.New("file storage failed")
	ErrPersistence  = errors.New("database failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// classify tags err with ErrPersistence unless it already carries a kind.
func classify(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrProcessing, ErrStorage, ErrPersistence, ErrUnauthorized} {
		if errors.Is(err, kind) {
			return err
		}
	}

	return errors.Join(ErrPersistence, err)
}
