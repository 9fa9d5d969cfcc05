// Package docstore is an embeddable in-memory document repository.
//
// Documents are upserted with Save, fetched with FindByID and filtered with Search.
// A store is an ordinary value owned by its caller; create as many as needed with New.
package docstore

import (
	"github.com/MrSnakeDoc/docstore/internal/domain"
	"github.com/MrSnakeDoc/docstore/internal/index"
)

type (
	// Author identifies who wrote a document.
	Author = domain.Author
	// Document is a stored record.
	Document = domain.Document
	// SearchRequest holds optional search criteria; nil fields are ignored.
	SearchRequest = domain.SearchRequest
	// Store is an in-memory document store.
	Store = index.DocumentStore
)

var (
	// ErrDocumentNotFound is returned by Save for an ID the store does not hold.
	ErrDocumentNotFound = domain.ErrDocumentNotFound
	// ErrInvalidDocument is returned by Restore for a document without ID.
	ErrInvalidDocument = domain.ErrInvalidDocument
)

// New creates an empty store.
func New() *Store {
	return index.NewDocumentStore()
}

// Matches reports whether doc satisfies every supplied criterion of req.
func Matches(req SearchRequest, doc Document) bool {
	return domain.Matches(req, doc)
}
