package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrSnakeDoc/docstore/internal/domain"
)

// Skipped describes a seed entry that could not be mapped.
type Skipped struct {
	Index  int
	Reason string
}

// Mapper converts seed entries to domain documents
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// ToDocuments maps every valid entry of file. Entries without title or with an
// unparseable created value are reported in skipped instead of failing the whole file.
func (m *Mapper) ToDocuments(file File) (docs []domain.Document, skipped []Skipped) {
	docs = make([]domain.Document, 0, len(file.Documents))

	for i, e := range file.Documents {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			skipped = append(skipped, Skipped{Index: i, Reason: "missing title"})
			continue
		}

		created, err := parseCreated(e.Created)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Reason: err.Error()})
			continue
		}

		docs = append(docs, domain.Document{
			Title:   title,
			Content: e.Content,
			Author: domain.Author{
				ID:   strings.TrimSpace(e.Author.ID),
				Name: strings.TrimSpace(e.Author.Name),
			},
			Created: created,
		})
	}

	return docs, skipped
}

// parseCreated accepts RFC 3339 timestamps or plain dates (UTC midnight).
// An empty value returns the zero time so the store sets it on save.
func parseCreated(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid created %q", v)
}
