package domain

import "errors"

var (
	// ErrDocumentNotFound is returned when a save references an ID the store does not hold.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocument indicates a document cannot be accepted as-is (e.g. a restore without ID).
	ErrInvalidDocument = errors.New("invalid document")
)
