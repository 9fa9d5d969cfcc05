package domain

import "time"

// Author identifies who wrote a document.
// It has no lifecycle of its own and is embedded by value in Document.
type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Document is a single record held by the document store.
type Document struct {
	// ─────────────────────────────
	// Identity (immutable once assigned)
	// ─────────────────────────────

	// ID is the unique identifier assigned on first save.
	// Empty means the document has never been saved.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Author  Author `json:"author" yaml:"author"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// Created is fixed by the first save of an ID and never changes afterwards.
	// The zero value means it has not been set yet.
	Created time.Time `json:"created" yaml:"created"`
}

// IsNew reports whether the document has not been assigned an ID yet.
func (d Document) IsNew() bool {
	return d.ID == ""
}

// Equal reports whether two documents hold the same values.
// Created is compared with time.Time.Equal so location differences are ignored.
func (d Document) Equal(other Document) bool {
	return d.ID == other.ID &&
		d.Title == other.Title &&
		d.Content == other.Content &&
		d.Author == other.Author &&
		d.Created.Equal(other.Created)
}
