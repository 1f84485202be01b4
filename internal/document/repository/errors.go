package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateDocument is returned by Save when the caller-supplied ID is taken.
	ErrDuplicateDocument = errors.New("document already exists")
)

// DuplicateDocumentError reports the ID that was rejected.
type DuplicateDocumentError struct {
	ID string
}

func (e *DuplicateDocumentError) Error() string {
	return fmt.Sprintf("%s: id %q", ErrDuplicateDocument.Error(), e.ID)
}

func (e *DuplicateDocumentError) Unwrap() error { return ErrDuplicateDocument }

func duplicate(id string) error {
	return &DuplicateDocumentError{ID: id}
}
