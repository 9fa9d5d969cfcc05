package index

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/docstore/internal/domain"
)

// DocumentStore holds documents in memory, keyed by ID.
// Every instance owns its own map; stores never share state.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document // ID -> Document

	newID func() string    // UUID v4 by default
	now   func() time.Time // clock used when a new document has no Created
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		newID:     generateID,
		now:       time.Now,
	}
}

// generateID returns a random 128-bit identifier.
func generateID() string {
	return uuid.NewString()
}

// Save upserts doc and returns the stored copy.
//
// A document without ID is inserted under a freshly generated ID; its Created is
// set to the current time unless the caller supplied one.
// A document with a known ID replaces the stored one but keeps the stored Created.
// A document with an unknown ID is rejected with domain.ErrDocumentNotFound.
func (s *DocumentStore) Save(doc domain.Document) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.IsNew() {
		doc.ID = s.newID()
		if doc.Created.IsZero() {
			doc.Created = s.now().UTC()
		}
		s.documents[doc.ID] = doc
		return doc, nil
	}

	existing, ok := s.documents[doc.ID]
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, doc.ID)
	}

	doc.Created = existing.Created
	s.documents[doc.ID] = doc
	return doc, nil
}

// FindByID retrieves a document by ID
func (s *DocumentStore) FindByID(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	return doc, ok
}

// Search returns every document matching req, ordered by Created then ID.
// The returned slice is never nil.
func (s *DocumentStore) Search(req domain.SearchRequest) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		if domain.Matches(req, doc) {
			matched = append(matched, doc)
		}
	}
	sortDocuments(matched)
	return matched
}

// All returns a snapshot of every stored document
func (s *DocumentStore) All() []domain.Document {
	return s.Search(domain.SearchRequest{})
}

// Count returns the number of stored documents
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.documents)
}

// Restore inserts already-saved documents verbatim, keeping their ID and Created.
// Existing entries with the same ID are overwritten. Nothing is inserted if any
// document lacks an ID.
func (s *DocumentStore) Restore(docs []domain.Document) (int, error) {
	for i, doc := range docs {
		if doc.IsNew() {
			return 0, fmt.Errorf("%w: document %d has no id", domain.ErrInvalidDocument, i)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		s.documents[doc.ID] = doc
	}
	return len(docs), nil
}

func sortDocuments(docs []domain.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].Created.Equal(docs[j].Created) {
			return docs[i].Created.Before(docs[j].Created)
		}
		return docs[i].ID < docs[j].ID
	})
}
